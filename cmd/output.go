package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"shortener-be/internal/entities"
)

// printShortLink writes the full short link when a base URL is configured,
// otherwise just the code
func printShortLink(w io.Writer, baseURL, shortCode string) error {
	if baseURL != "" {
		_, err := fmt.Fprintf(w, "%s/%s\n", strings.TrimRight(baseURL, "/"), shortCode)
		return err
	}
	_, err := fmt.Fprintln(w, shortCode)
	return err
}

// printURLs writes mappings as aligned columns in the order given
func printURLs(w io.Writer, urls []*entities.URLMapping) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SHORT CODE\tCREATED AT\tLONG URL")
	for _, u := range urls {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ShortCode, u.CreatedAt.UTC().Format(time.RFC3339), u.LongURL)
	}
	return tw.Flush()
}
