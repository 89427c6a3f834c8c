package cli

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	webbrowser "github.com/pkg/browser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dennoAiden/swiper-venture/internal/scroll"
)

var sections = []string{scroll.SectionHome, scroll.SectionProjects, scroll.SectionContact}

// Replaced in tests.
var (
	openURL        = webbrowser.OpenURL
	writeClipboard = clipboard.WriteAll
)

func newOpenCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:       "open [section]",
		Short:     "Open the landing page, or one of its sections, in the default browser",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: sections,
		RunE: func(cmd *cobra.Command, args []string) error {
			section := ""
			if len(args) == 1 {
				section = args[0]
			}

			target, err := SectionURL(v.GetString("url"), section)
			if err != nil {
				return err
			}

			if v.GetBool("copy") {
				if err := writeClipboard(target); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "copied", target)
				return nil
			}

			if err := openURL(target); err != nil {
				return fmt.Errorf("open %s manually: %w", target, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "opened", target)
			return nil
		},
	}

	cmd.Flags().Bool("copy", false, "copy the URL to the clipboard instead of opening it")
	_ = v.BindPFlags(cmd.Flags())
	return cmd
}

// SectionURL points pageURL at section. An empty section leaves pageURL
// without a fragment.
func SectionURL(pageURL, section string) (string, error) {
	if section != "" && !slices.Contains(sections, section) {
		return "", fmt.Errorf("unknown section %q (want one of %s)", section, strings.Join(sections, ", "))
	}

	u, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("url %q must be absolute", pageURL)
	}

	u.Fragment = section
	return u.String(), nil
}
