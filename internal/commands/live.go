package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"agedcache/internal/clock"
)

func addLiveFlags(fs *pflag.FlagSet) {
	fs.String("key", "k", "Key to insert")
	fs.String("value", "v", "Value to insert")
	fs.Duration("retention", 0, "Retention for the entry (default: settings retention_ms)")
}

func newLiveCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "live",
		Short: "Insert one entry against the system clock and watch it expire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _ := cmd.Flags().GetString("key")
			value, _ := cmd.Flags().GetString("value")
			retention := st.settings.Retention()
			if cmd.Flags().Changed("retention") {
				retention, _ = cmd.Flags().GetDuration("retention")
			}

			// Signal-aware context so Ctrl+C ends the wait early.
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runLive(ctx, cmd, st, clock.System{}, key, value, retention)
		},
	}
	addLiveFlags(cmd.Flags())
	return cmd
}

func runLive(ctx context.Context, cmd *cobra.Command, st *state, clk clock.Clock, key, value string, retention time.Duration) error {
	o := newObserver(cmd.OutOrStdout(), clk, clk.NowMillis())

	st.log.Info("live starting", "key", key, "retention", retention.String(), "wait", st.settings.Wait().String())

	o.put(key, value, retention)
	o.get(key)
	o.size()

	wait := time.NewTimer(st.settings.Wait())
	defer wait.Stop()

	select {
	case <-ctx.Done():
		st.log.Info("received shutdown signal")
		return nil
	case <-wait.C:
	}

	o.get(key)
	n := o.size()
	st.log.Info("live finished", "remaining", n)
	return nil
}
