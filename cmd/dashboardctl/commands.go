package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/onurcolak/gateway-dashboard/environments"
	"github.com/onurcolak/gateway-dashboard/internal/domain"
	"github.com/onurcolak/gateway-dashboard/internal/listview"
	"github.com/onurcolak/gateway-dashboard/internal/pairing"
	"github.com/onurcolak/gateway-dashboard/pkg/seed"
)

type listFlags struct {
	search string
	status string
	kind   string
	sort   string
	dir    string
}

func (f listFlags) query() listview.Query {
	q := listview.Query{
		Search: f.search,
		Sort:   listview.Sort{Key: f.sort, Direction: listview.Direction(f.dir)},
	}
	if f.status != "" || f.kind != "" {
		q.Filters = map[string]string{}
	}
	if f.status != "" {
		q.Filters["status"] = f.status
	}
	if f.kind != "" {
		q.Filters["type"] = f.kind
	}
	return q
}

func newRootCmd() *cobra.Command {
	var fixtures string

	root := &cobra.Command{
		Use:   "dashboardctl",
		Short: "Gateway dashboard terminal companion",
		Long: `Lists the dashboard tables from fixture data and runs the pairing
simulation, using the same rules as the web dashboard.`,
		SilenceUsage: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.PersistentFlags().StringVar(&fixtures, "fixtures", environments.GetEnv("SEED_FIXTURES_PATH", ""),
		"fixtures file (defaults to the built-in data)")

	load := func() (*seed.Data, error) {
		return seed.Load(fixtures)
	}

	root.AddCommand(
		newMessagesCmd(load),
		newDevicesCmd(load),
		newWebhooksCmd(load),
		newFixturesCmd(load),
		newPairCmd(),
	)
	return root
}

func addListFlags(cmd *cobra.Command, f *listFlags, withType bool) {
	cmd.Flags().StringVar(&f.search, "search", "", "case-insensitive search")
	cmd.Flags().StringVar(&f.status, "status", "", "status filter, or all")
	cmd.Flags().StringVar(&f.sort, "sort", "", "sort column")
	cmd.Flags().StringVar(&f.dir, "dir", "", "asc or desc")
	if withType {
		cmd.Flags().StringVar(&f.kind, "type", "", "type filter, or all")
	}
}

func newMessagesCmd(load func() (*seed.Data, error)) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "messages",
		Short: "List the message log",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := load()
			if err != nil {
				return err
			}

			res := listview.Map(listview.Apply(data.Messages, listview.Messages, f.query()), domain.NewMessageRow)
			if res.NoResults {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(res.Message))
				return nil
			}

			t := newTable("ID", "Sender", "Recipient", "Preview", "Status", "Time", "Type")
			for _, m := range res.Items {
				t.Row(m.ID, m.Sender, m.Recipient, m.Preview, badge(m.StatusBadge),
					m.Timestamp.UTC().Format("2006-01-02 15:04"), m.TypeLabel)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(fmt.Sprintf("%d of %d messages", res.Count, res.Total)))
			return nil
		},
	}
	addListFlags(cmd, &f, true)
	return cmd
}

func newDevicesCmd(load func() (*seed.Data, error)) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := load()
			if err != nil {
				return err
			}

			res := listview.Map(listview.Apply(data.Devices, listview.Devices, f.query()), domain.NewDeviceRow)
			if res.NoResults {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(res.Message))
				return nil
			}

			t := newTable("ID", "Name", "Phone", "Status", "Last connection", "Messages")
			for _, d := range res.Items {
				t.Row(d.ID, d.Name, d.PhoneNumber, badge(d.StatusBadge),
					d.LastConnection.UTC().Format("2006-01-02 15:04"), strconv.Itoa(d.MessageCount))
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	addListFlags(cmd, &f, false)
	return cmd
}

func newWebhooksCmd(load func() (*seed.Data, error)) *cobra.Command {
	var f listFlags

	cmd := &cobra.Command{
		Use:   "webhooks",
		Short: "List webhooks",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := load()
			if err != nil {
				return err
			}

			res := listview.Map(listview.Apply(data.Webhooks, listview.Webhooks, f.query()), domain.NewWebhookRow)
			if res.NoResults {
				fmt.Fprintln(cmd.OutOrStdout(), mutedStyle.Render(res.Message))
				return nil
			}

			t := newTable("ID", "URL", "Events", "Status", "Last triggered")
			for _, w := range res.Items {
				t.Row(w.ID, w.URL, strings.Join(w.Events, ", "), badge(w.StatusBadge), w.LastTriggeredLabel)
			}
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			return nil
		},
	}
	addListFlags(cmd, &f, false)
	return cmd
}

// newFixturesCmd checks that a fixtures file loads and reports what it holds.
func newFixturesCmd(load func() (*seed.Data, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "fixtures",
		Short: "Validate a fixtures file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := load()
			if err != nil {
				return err
			}

			t := newTable("Collection", "Records")
			t.Row("messages", strconv.Itoa(len(data.Messages)))
			t.Row("conversations", strconv.Itoa(len(data.Conversations)))
			t.Row("devices", strconv.Itoa(len(data.Devices)))
			t.Row("webhooks", strconv.Itoa(len(data.Webhooks)))
			t.Row("credentials", strconv.Itoa(len(data.Credentials)))
			t.Row("recipients", strconv.Itoa(len(data.Recipients)))
			t.Row("templates", strconv.Itoa(len(data.Templates)))
			t.Row("volume points", strconv.Itoa(len(data.Analytics.MessageVolume)))
			fmt.Fprintln(cmd.OutOrStdout(), t.Render())
			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Fixtures loaded successfully"))
			return nil
		},
	}
}

func newPairCmd() *cobra.Command {
	cfg := environments.Load().Pairing

	cmd := &cobra.Command{
		Use:   "pair",
		Short: "Run the QR pairing simulation",
		Long: `Starts a pairing countdown and reports the outcome. Interrupting the
command cancels the scan.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runPairing(ctx, cmd, pairing.Config{
				Countdown:          cfg.Countdown,
				TickInterval:       cfg.TickInterval,
				SuccessProbability: cfg.SuccessProbability,
			}, pairing.RealClock(), pairing.DefaultRandom())
		},
	}
	cmd.Flags().IntVar(&cfg.Countdown, "countdown", cfg.Countdown, "seconds on the countdown")
	cmd.Flags().DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "time between countdown steps")
	cmd.Flags().Float64Var(&cfg.SuccessProbability, "probability", cfg.SuccessProbability, "chance that a scan succeeds")
	return cmd
}

func runPairing(ctx context.Context, cmd *cobra.Command, cfg pairing.Config, clock pairing.Clock, rng pairing.Random) error {
	out := cmd.OutOrStdout()

	session := pairing.NewSession("cli", "", cfg, clock, rng, nil)
	defer session.Close()

	updates, unsubscribe := session.Subscribe()
	defer unsubscribe()

	if _, err := session.Start(); err != nil {
		return err
	}
	fmt.Fprintln(out, warningStyle.Render("Scan the QR code with WhatsApp on your phone"))

	for {
		select {
		case <-ctx.Done():
			if _, err := session.Cancel(); err == nil {
				fmt.Fprintln(out, mutedStyle.Render("Pairing cancelled"))
			}
			return nil
		case snap, ok := <-updates:
			if !ok {
				return nil
			}
			switch snap.Status {
			case pairing.StatusScanning:
				fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%2ds remaining", snap.Countdown)))
			case pairing.StatusSuccess:
				fmt.Fprintln(out, successStyle.Render("Paired "+snap.DeviceID))
				return nil
			case pairing.StatusError:
				fmt.Fprintln(out, errorStyle.Render("Pairing failed, the QR code expired"))
				return fmt.Errorf("pairing failed")
			}
		case <-time.After(time.Duration(cfg.Countdown+5) * maxTick(cfg.TickInterval)):
			return fmt.Errorf("pairing timed out")
		}
	}
}

func maxTick(d time.Duration) time.Duration {
	if d <= 0 {
		return time.Second
	}
	return d
}
