package commands

import (
	"time"

	"github.com/spf13/cobra"

	"agedcache/internal/clock"
)

func newDemoCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Replay a scripted expiry scenario on a manual clock",
		Long: "Drives the cache with a clock that only moves when the script advances it,\n" +
			"showing lookups within retention, the exclusive expiry boundary and the lazy sweep.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			clk := clock.NewManual(0)
			o := newObserver(cmd.OutOrStdout(), clk, 0)

			st.log.Info("demo starting", "clock", "manual")

			o.put("a", "1", 100*time.Millisecond)

			clk.Set(50)
			o.get("a")

			// Elapsed == retention: already expired.
			clk.Set(100)
			o.get("a")

			o.put("b", "2", 50*time.Millisecond)

			// "a" is still in the map until a sweep; size triggers it.
			clk.Set(130)
			n := o.size()
			o.empty()

			st.log.Info("demo finished", "remaining", n)
			return nil
		},
	}
}
