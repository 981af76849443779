package engine

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var msgPrinter = message.NewPrinter(language.English)

// formatMessage creates a user-facing message for the result
func formatMessage(betAmount int64, result evalResult) string {
	if result.totalWin == 0 {
		return msgPrinter.Sprintf("Better luck next time! You lost %d credits.", betAmount)
	}

	netWin := result.totalWin - betAmount

	switch {
	case result.jackpotWon:
		return msgPrinter.Sprintf("💎 JACKPOT! 💎 You won %d credits (net %+d)!", result.totalWin, netWin)
	case result.bonusTriggered:
		return msgPrinter.Sprintf("🎉 BONUS! You won %d credits and %d free spins (net %+d)!",
			result.totalWin, result.freeSpins, netWin)
	default:
		if netWin > 0 {
			return msgPrinter.Sprintf("You won %d credits (net %+d)!", result.totalWin, netWin)
		}
		if netWin == 0 {
			return msgPrinter.Sprintf("You broke even! %d credits returned.", result.totalWin)
		}
		return msgPrinter.Sprintf("Small win! You got %d back (net %d).", result.totalWin, netWin)
	}
}
