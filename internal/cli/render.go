package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"vgm/internal/domain"
	"vgm/internal/listview"
)

func renderGames(out io.Writer, games []domain.Game, page listview.Page, total int) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tYEAR\tPLATFORM\tGENRE\tSTATUS\tRATING")
	for _, g := range games {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\n",
			g.ID, g.Name, g.Year, platformName(g.Platform), g.Genre, g.Status, stars(g.Rating))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "page %d/%d, %d game(s)\n",
		page.Index+1, listview.PageCount(total, page.Size), total)
	return err
}

func renderPlatforms(out io.Writer, platforms []domain.Platform, counts func(int64) int, page listview.Page, total int) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tYEAR\tGAMES")
	for _, p := range platforms {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\n", p.ID, p.Name, p.Year, counts(p.ID))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(out, "page %d/%d, %d platform(s)\n",
		page.Index+1, listview.PageCount(total, page.Size), total)
	return err
}

// dangling references have no name
func platformName(p domain.Platform) string {
	if p.Name == "" {
		return "#" + strconv.FormatInt(p.ID, 10)
	}
	return p.Name
}

func stars(rating *int) string {
	if rating == nil {
		return "-"
	}
	return strings.Repeat("*", *rating)
}

// confirm asks a y/N question; anything but y or yes is a no.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)
	line, _ := bufio.NewReader(in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}

func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, a := range args {
		id, err := strconv.ParseInt(a, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid id %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
