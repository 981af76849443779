package postgres

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/spinworks/SlotEngine_Go/internal/domain"
)

func TestLedgerRepository_Integration(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()
	repo := NewLedgerRepository(pool)

	t.Run("GetWallet unknown user", func(t *testing.T) {
		_, err := repo.GetWallet(ctx, "nobody")
		if !errors.Is(err, domain.ErrWalletNotFound) {
			t.Fatalf("expected ErrWalletNotFound, got %v", err)
		}
	})

	t.Run("Upsert and read wallet", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		if err := tx.UpsertWallet(ctx, "alice", 1000); err != nil {
			t.Fatalf("UpsertWallet failed: %v", err)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		wallet, err := repo.GetWallet(ctx, "alice")
		if err != nil {
			t.Fatalf("GetWallet failed: %v", err)
		}
		if wallet.Balance != 1000 {
			t.Errorf("expected balance 1000, got %d", wallet.Balance)
		}
		if wallet.UpdatedAt.IsZero() {
			t.Error("expected updated_at to be set")
		}
	})

	t.Run("Transaction rows and sum", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		debit := &domain.Transaction{
			UserID:       "bob",
			Amount:       -100,
			Kind:         domain.TxKindBetDebit,
			BalanceAfter: 900,
			Reference:    "spin-1",
		}
		credit := &domain.Transaction{
			UserID:       "bob",
			Amount:       250,
			Kind:         domain.TxKindWinCredit,
			BalanceAfter: 1150,
			Reference:    "spin-1",
		}
		if err := tx.InsertTransaction(ctx, debit); err != nil {
			t.Fatalf("InsertTransaction debit failed: %v", err)
		}
		if err := tx.InsertTransaction(ctx, credit); err != nil {
			t.Fatalf("InsertTransaction credit failed: %v", err)
		}
		if debit.ID == "" || credit.ID == "" {
			t.Fatal("expected transaction IDs to be assigned")
		}
		if err := tx.UpsertWallet(ctx, "bob", 1150); err != nil {
			t.Fatalf("UpsertWallet failed: %v", err)
		}
		if err := tx.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		txns, err := repo.GetTransactions(ctx, "bob", 10)
		if err != nil {
			t.Fatalf("GetTransactions failed: %v", err)
		}
		if len(txns) != 2 {
			t.Fatalf("expected 2 transactions, got %d", len(txns))
		}
		if txns[0].Kind != domain.TxKindWinCredit || txns[0].BalanceAfter != 1150 {
			t.Errorf("expected newest row to be the credit, got %+v", txns[0])
		}
		if txns[1].Reference != "spin-1" {
			t.Errorf("expected reference spin-1, got %q", txns[1].Reference)
		}

		sum, err := repo.SumTransactions(ctx, "bob")
		if err != nil {
			t.Fatalf("SumTransactions failed: %v", err)
		}
		if sum != 150 {
			t.Errorf("expected sum 150, got %d", sum)
		}
	})

	t.Run("Rollback discards all writes", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		if err := tx.UpsertWallet(ctx, "carol", 500); err != nil {
			t.Fatalf("UpsertWallet failed: %v", err)
		}
		if err := tx.InsertTransaction(ctx, &domain.Transaction{
			UserID: "carol", Amount: 500, Kind: domain.TxKindManual, BalanceAfter: 500,
		}); err != nil {
			t.Fatalf("InsertTransaction failed: %v", err)
		}
		if err := tx.Rollback(ctx); err != nil {
			t.Fatalf("Rollback failed: %v", err)
		}

		if _, err := repo.GetWallet(ctx, "carol"); !errors.Is(err, domain.ErrWalletNotFound) {
			t.Fatalf("expected ErrWalletNotFound after rollback, got %v", err)
		}
		sum, err := repo.SumTransactions(ctx, "carol")
		if err != nil {
			t.Fatalf("SumTransactions failed: %v", err)
		}
		if sum != 0 {
			t.Errorf("expected no rows after rollback, got sum %d", sum)
		}
	})

	t.Run("GetWalletForUpdate serializes concurrent mutations", func(t *testing.T) {
		seed, err := repo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		if err := seed.UpsertWallet(ctx, "dave", 100); err != nil {
			t.Fatalf("UpsertWallet failed: %v", err)
		}
		if err := seed.Commit(ctx); err != nil {
			t.Fatalf("Commit failed: %v", err)
		}

		// Two workers both try to spend 100 from a 100 balance. Row locking
		// must ensure exactly one sees sufficient funds.
		var wg sync.WaitGroup
		results := make([]bool, 2)
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				tx, err := repo.BeginTx(ctx)
				if err != nil {
					t.Errorf("BeginTx failed: %v", err)
					return
				}
				wallet, err := tx.GetWalletForUpdate(ctx, "dave")
				if err != nil {
					t.Errorf("GetWalletForUpdate failed: %v", err)
					_ = tx.Rollback(ctx)
					return
				}
				if wallet == nil || wallet.Balance < 100 {
					_ = tx.Rollback(ctx)
					return
				}
				if err := tx.InsertTransaction(ctx, &domain.Transaction{
					UserID: "dave", Amount: -100, Kind: domain.TxKindBetDebit, BalanceAfter: wallet.Balance - 100,
				}); err != nil {
					t.Errorf("InsertTransaction failed: %v", err)
					_ = tx.Rollback(ctx)
					return
				}
				if err := tx.UpsertWallet(ctx, "dave", wallet.Balance-100); err != nil {
					t.Errorf("UpsertWallet failed: %v", err)
					_ = tx.Rollback(ctx)
					return
				}
				if err := tx.Commit(ctx); err != nil {
					t.Errorf("Commit failed: %v", err)
					return
				}
				results[i] = true
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, ok := range results {
			if ok {
				succeeded++
			}
		}
		if succeeded != 1 {
			t.Errorf("expected exactly one debit to succeed, got %d", succeeded)
		}

		wallet, err := repo.GetWallet(ctx, "dave")
		if err != nil {
			t.Fatalf("GetWallet failed: %v", err)
		}
		if wallet.Balance != 0 {
			t.Errorf("expected final balance 0, got %d", wallet.Balance)
		}
	})

	t.Run("GetWalletForUpdate materializes and locks fresh wallets", func(t *testing.T) {
		// Without a row to lock, two first-ever credits could both read a
		// zero base and overwrite each other. The materialized placeholder
		// row makes them serialize like any existing wallet.
		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				tx, err := repo.BeginTx(ctx)
				if err != nil {
					t.Errorf("BeginTx failed: %v", err)
					return
				}
				wallet, err := tx.GetWalletForUpdate(ctx, "erin")
				if err != nil {
					t.Errorf("GetWalletForUpdate failed: %v", err)
					_ = tx.Rollback(ctx)
					return
				}
				var base int64
				if wallet != nil {
					base = wallet.Balance
				}
				if err := tx.InsertTransaction(ctx, &domain.Transaction{
					UserID: "erin", Amount: 100, Kind: domain.TxKindManual, BalanceAfter: base + 100,
				}); err != nil {
					t.Errorf("InsertTransaction failed: %v", err)
					_ = tx.Rollback(ctx)
					return
				}
				if err := tx.UpsertWallet(ctx, "erin", base+100); err != nil {
					t.Errorf("UpsertWallet failed: %v", err)
					_ = tx.Rollback(ctx)
					return
				}
				if err := tx.Commit(ctx); err != nil {
					t.Errorf("Commit failed: %v", err)
				}
			}()
		}
		wg.Wait()

		wallet, err := repo.GetWallet(ctx, "erin")
		if err != nil {
			t.Fatalf("GetWallet failed: %v", err)
		}
		sum, err := repo.SumTransactions(ctx, "erin")
		if err != nil {
			t.Fatalf("SumTransactions failed: %v", err)
		}
		if wallet.Balance != 200 || sum != 200 {
			t.Errorf("expected balance and sum 200, got balance %d sum %d", wallet.Balance, sum)
		}
	})

	t.Run("GetWalletForUpdate placeholder vanishes on rollback", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		if err != nil {
			t.Fatalf("BeginTx failed: %v", err)
		}
		wallet, err := tx.GetWalletForUpdate(ctx, "frank")
		if err != nil {
			t.Fatalf("GetWalletForUpdate failed: %v", err)
		}
		if wallet != nil {
			t.Fatalf("expected nil wallet for fresh user, got %+v", wallet)
		}
		if err := tx.Rollback(ctx); err != nil {
			t.Fatalf("Rollback failed: %v", err)
		}

		if _, err := repo.GetWallet(ctx, "frank"); !errors.Is(err, domain.ErrWalletNotFound) {
			t.Fatalf("expected ErrWalletNotFound after rollback, got %v", err)
		}
	})
}
