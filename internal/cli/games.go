package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vgm/internal/domain"
	"vgm/internal/listview"
)

func newGamesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "List and delete games",
	}
	cmd.AddCommand(newGamesListCmd(a))
	cmd.AddCommand(newGamesDeleteCmd(a))
	return cmd
}

func newGamesListCmd(a *app) *cobra.Command {
	var (
		search    string
		platforms []int64
		genres    []string
		statuses  []string
		sortBy    string
		desc      bool
		page      int
		size      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show a page of games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, ok := listview.ParseSortField(sortBy)
			if !ok {
				return fmt.Errorf("unknown sort field %q", sortBy)
			}
			gs := make([]domain.Genre, 0, len(genres))
			for _, g := range genres {
				genre, err := domain.ParseGenre(g)
				if err != nil {
					return err
				}
				gs = append(gs, genre)
			}
			ss := make([]domain.Status, 0, len(statuses))
			for _, s := range statuses {
				status, err := domain.ParseStatus(s)
				if err != nil {
					return err
				}
				ss = append(ss, status)
			}

			sess := a.session()
			if err := sess.Reload(cmd.Context()); err != nil {
				return err
			}
			v := sess.Games

			if err := v.SetPageSize(size); err != nil {
				return err
			}
			if err := setSort(v.Sort(), field, desc, v.ToggleSort); err != nil {
				return err
			}
			if err := v.SetSearch(search); err != nil {
				return err
			}
			if err := v.SetPlatforms(platforms); err != nil {
				return err
			}
			if err := v.SetGenres(gs); err != nil {
				return err
			}
			if err := v.SetStatuses(ss); err != nil {
				return err
			}
			if err := v.SetPage(page - 1); err != nil {
				return err
			}

			return renderGames(a.out, v.Visible(), v.Page(), v.Total())
		},
	}

	f := cmd.Flags()
	f.StringVar(&search, "search", "", "case-insensitive name substring")
	f.Int64SliceVar(&platforms, "platform", nil, "platform id; repeat to match any of several")
	f.StringSliceVar(&genres, "genre", nil, "genre; repeat to match any of several")
	f.StringSliceVar(&statuses, "status", nil, "status; repeat to match any of several")
	f.StringVar(&sortBy, "sort", string(listview.SortByName), "sort by name, year or platform")
	f.BoolVar(&desc, "desc", false, "sort descending")
	f.IntVar(&page, "page", 1, "page number, starting at 1")
	f.IntVar(&size, "size", listview.DefaultPageSize, "rows per page")
	return cmd
}

func newGamesDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete games after confirmation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			sess := a.session()
			v := sess.Games
			if err := v.RequestDelete(ids...); err != nil {
				return err
			}
			if !yes && !confirm(a.in, a.out, fmt.Sprintf("Delete %d game(s)?", len(ids))) {
				v.CancelDelete()
				fmt.Fprintln(a.out, "Cancelled")
				return nil
			}

			res, err := v.ConfirmDelete(cmd.Context())
			fmt.Fprintf(a.out, "Deleted %d game(s)\n", len(res.Deleted))
			if ferr := res.Err(); ferr != nil {
				return ferr
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// setSort moves from the current sort to field/desc through toggles.
func setSort(cur listview.Sort, field listview.SortField, desc bool, toggle func(listview.SortField) error) error {
	if cur.Field != field {
		if err := toggle(field); err != nil {
			return err
		}
		cur = cur.Toggle(field)
	}
	if cur.Desc != desc {
		return toggle(field)
	}
	return nil
}
