package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ghuser/boxjoy/pkg/app"
	appsvcs "github.com/ghuser/boxjoy/services/collection/application/services"
	collectiondomain "github.com/ghuser/boxjoy/services/collection/domain"
	"github.com/ghuser/boxjoy/services/collection/domain/models"
	"github.com/ghuser/boxjoy/services/collection/infrastructure/persistence/kv"
)

func newSeriesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "series",
		Short: "List series with their completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(cmd.Context(), func(svcs *appsvcs.Services) error {
				progress := svcs.Collection.ListSeriesProgress()
				rows := make([][]string, 0, len(progress))
				for _, p := range progress {
					rows = append(rows, []string{
						p.Series.ID,
						p.Series.Name,
						fmt.Sprintf("%d/%d", p.OwnedCount, p.Total),
						fmt.Sprintf("%.0f%%", p.Percent),
						yesNo(p.Complete),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"ID", "Name", "Owned", "Progress", "Complete"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft},
				))
				return nil
			})
		},
	}
}

func newItemsCommand(ctx *commandContext) *cobra.Command {
	var seriesID, status, search, sortBy string

	cmd := &cobra.Command{
		Use:   "items",
		Short: "List items using the same filters as the app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := models.ParseStatusFilter(strings.TrimSpace(status))
			if err != nil {
				return err
			}
			sortOpt, err := models.ParseSortOption(sortBy)
			if err != nil {
				return err
			}
			q := models.ViewQuery{
				SeriesID: strings.TrimSpace(seriesID),
				Status:   filter,
				Search:   search,
				Sort:     sortOpt,
			}

			return ctx.withServices(cmd.Context(), func(svcs *appsvcs.Services) error {
				seriesNames := make(map[string]string)
				for _, s := range svcs.Collection.ListSeries() {
					seriesNames[s.ID] = s.Name
				}

				items := svcs.Collection.VisibleItems(q)
				rows := make([][]string, 0, len(items))
				for _, it := range items {
					rows = append(rows, []string{
						it.ID,
						it.Name,
						seriesNames[it.SeriesID],
						it.EffectiveStatus().Label(),
						formatPrice(it.Price),
						acquiredDate(it),
						strings.Join(it.Tags, ", "),
					})
				}
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, renderTable(
					[]string{"ID", "Name", "Series", "Status", "Price", "Acquired", "Tags"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
				))
				fmt.Fprintf(out, "%d item(s)\n", len(items))

				if q.SeriesID == "" {
					return nil
				}
				slots, applicable, err := svcs.Collection.GhostSlots(q.SeriesID, q)
				if err != nil {
					return err
				}
				if applicable {
					fmt.Fprintf(out, "Missing: %d regular, %d secret\n", slots.Regular, slots.Secret)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&seriesID, "series", "", "Only items of this series ID")
	cmd.Flags().StringVar(&status, "status", "", "Status filter: all, displayed, stored or not_owned")
	cmd.Flags().StringVarP(&search, "query", "q", "", "Case-insensitive search over name, description and tags")
	cmd.Flags().StringVar(&sortBy, "sort", string(models.DefaultSort), "Sort order")
	return cmd
}

func newSlotsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "slots <series-id>",
		Short: "Show how many regular and secret figures a series is still missing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seriesID := strings.TrimSpace(args[0])
			return ctx.withServices(cmd.Context(), func(svcs *appsvcs.Services) error {
				series, err := svcs.Collection.GetSeries(seriesID)
				if err != nil {
					return err
				}
				slots, _, err := svcs.Collection.GhostSlots(seriesID, models.ViewQuery{SeriesID: seriesID})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Series", "Regular", "Secret", "Total"},
					[][]string{{
						series.Name,
						strconv.Itoa(slots.Regular),
						strconv.Itoa(slots.Secret),
						strconv.Itoa(slots.Total()),
					}},
					[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
				))
				return nil
			})
		},
	}
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show collection totals and level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withServices(cmd.Context(), func(svcs *appsvcs.Services) error {
				st := svcs.Collection.Stats()
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Metric", "Value"},
					[][]string{
						{"Owned", strconv.Itoa(st.OwnedCount)},
						{"Not owned", strconv.Itoa(st.NotOwnedCount)},
						{"Total", strconv.Itoa(st.TotalCount)},
						{"Value", formatPrice(st.TotalValue)},
						{"Level", strconv.Itoa(st.Level)},
						{"Progress", fmt.Sprintf("%d%% (next level at %d)", st.Progress, st.NextLevelAt)},
					},
					[]columnAlignment{alignLeft, alignRight},
				))
				return nil
			})
		},
	}
}

const resetLong = `reset discards every series and item and restores the starter data.
It also repairs a store that no longer decodes.

Stop the API server first: it keeps the collection in memory and would
overwrite the reset on its next change.`

func newResetCommand(ctx *commandContext) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Replace the whole collection with the starter data",
		Long:  resetLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("%w: pass --yes to discard the collection", collectiondomain.ErrResetNotConfirmed)
			}
			return ctx.withApplication(cmd.Context(), func(a *app.Application) error {
				snap, err := resetCollection(cmd, a)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "collection reset: %d series, %d items\n", len(snap.Series), len(snap.Items))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")
	return cmd
}

// resetCollection resets through the collection service so the change is
// published. A store that fails to load is overwritten directly.
func resetCollection(cmd *cobra.Command, a *app.Application) (models.Snapshot, error) {
	svcs, err := appsvcs.New(cmd.Context(), a)
	if err == nil {
		return svcs.Collection.Reset(cmd.Context(), true)
	}
	if !errors.Is(err, collectiondomain.ErrCorruptState) {
		return models.Snapshot{}, err
	}

	a.Logger.Warn("stored collection is corrupt, overwriting with starter data", "error", err)
	seriesKey, itemsKey := a.Config.StorageKeys()
	repo := kv.NewCollectionRepository(a.Store, seriesKey, itemsKey, a.Logger)
	snap := models.Seed(time.Now())
	if err := repo.Save(cmd.Context(), snap); err != nil {
		return models.Snapshot{}, err
	}
	return snap, nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func acquiredDate(it models.Item) string {
	t, ok := it.AcquiredAt()
	if !ok {
		return "-"
	}
	return t.UTC().Format("2006-01-02")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
