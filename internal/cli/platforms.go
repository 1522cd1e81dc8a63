package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vgm/internal/listview"
)

func newPlatformsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platforms",
		Short: "List and delete platforms",
	}
	cmd.AddCommand(newPlatformsListCmd(a))
	cmd.AddCommand(newPlatformsDeleteCmd(a))
	return cmd
}

func newPlatformsListCmd(a *app) *cobra.Command {
	var (
		search string
		sortBy string
		desc   bool
		page   int
		size   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show a page of platforms with their game counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, ok := listview.ParseSortField(sortBy)
			if !ok || field == listview.SortByPlatform {
				return fmt.Errorf("unknown sort field %q", sortBy)
			}

			sess := a.session()
			if err := sess.Reload(cmd.Context()); err != nil {
				return err
			}
			v := sess.Platforms

			if err := v.SetPageSize(size); err != nil {
				return err
			}
			if err := setSort(v.Sort(), field, desc, v.ToggleSort); err != nil {
				return err
			}
			if err := v.SetSearch(search); err != nil {
				return err
			}
			if err := v.SetPage(page - 1); err != nil {
				return err
			}

			return renderPlatforms(a.out, v.Visible(), v.GameCount, v.Page(), v.Total())
		},
	}

	f := cmd.Flags()
	f.StringVar(&search, "search", "", "case-insensitive name substring")
	f.StringVar(&sortBy, "sort", string(listview.SortByName), "sort by name or year")
	f.BoolVar(&desc, "desc", false, "sort descending")
	f.IntVar(&page, "page", 1, "page number, starting at 1")
	f.IntVar(&size, "size", listview.DefaultPageSize, "rows per page")
	return cmd
}

func newPlatformsDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete platforms no game refers to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}

			// the in-use check needs the current games
			sess := a.session()
			if err := sess.Reload(cmd.Context()); err != nil {
				return err
			}
			v := sess.Platforms
			if err := v.RequestDelete(ids...); err != nil {
				return err
			}
			if !yes && !confirm(a.in, a.out, fmt.Sprintf("Delete %d platform(s)?", len(ids))) {
				v.CancelDelete()
				fmt.Fprintln(a.out, "Cancelled")
				return nil
			}

			res, err := v.ConfirmDelete(cmd.Context())
			fmt.Fprintf(a.out, "Deleted %d platform(s)\n", len(res.Deleted))
			if ferr := res.Err(); ferr != nil {
				return ferr
			}
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
