package cli

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/gabapcia/coinflip/internal/bethistory"
	"github.com/gabapcia/coinflip/internal/coinflip"
	"github.com/gabapcia/coinflip/internal/game"
	"github.com/gabapcia/coinflip/internal/ledger"
)

func printState(w io.Writer, state *coinflip.State) {
	if state == nil {
		fmt.Fprintln(w, "game not initialized")
		return
	}

	fmt.Fprintf(w, "initialized: %t\ntotal bets: %d\ntotal wagered: %s\n",
		state.IsInitialized, state.TotalBets, state.TotalAmountWagered)
}

func printSettlement(w io.Writer, amount ledger.Lamports, side coinflip.Side, result game.Settlement) {
	fmt.Fprintf(w, "bet %s on %s: %s\n", amount, side, result.Outcome)
	fmt.Fprintf(w, "signature: %s\n", result.Signature)

	if result.State != nil {
		printState(w, result.State)
	}
}

func printHistory(w io.Writer, records []bethistory.BetRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "no bets found")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SIGNATURE\tAMOUNT\tRESULT\tTIME")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Signature, r.Amount, r.Result, r.Timestamp.UTC().Format(time.RFC3339))
	}

	return tw.Flush()
}
