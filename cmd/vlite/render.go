package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vlite/internal/demo"
	"github.com/vango-dev/vlite/internal/errors"
	"github.com/vango-dev/vlite/pkg/host/memdom"
	"github.com/vango-dev/vlite/pkg/publish"
)

func renderCmd(c *cli) *cobra.Command {
	var (
		clicks []string
		pretty bool
		out    string
	)

	cmd := &cobra.Command{
		Use:   "render <demo>",
		Short: "Render a demo app to HTML",
		Long: `Mount a demo app on an in-memory document and print its markup.

Each --click names an element by its class; it is clicked in order, so
every click dispatches and re-renders before the next one is looked up.

Examples:
  vlite render counter
  vlite render counter --click inc --click inc
  vlite render todo --pretty --out dist`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := memdom.HTMLOptions{
				Pretty: pretty || c.cfg.Render.Pretty,
				Indent: c.cfg.Render.Indent,
			}
			body, err := renderDemo(args[0], clicks, c.setup(), opts)
			if err != nil {
				return err
			}

			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), body)
				if !opts.Pretty {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				return nil
			}

			page, err := publish.Page(args[0], body)
			if err != nil {
				return err
			}
			key := args[0] + ".html"
			if err := publish.NewDirPublisher(out).Publish(cmd.Context(), key, page); err != nil {
				return err
			}
			success(cmd, "Wrote %s/%s", out, key)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&clicks, "click", nil, "Class of an element to click before rendering (repeatable)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write <demo>.html to this directory instead of stdout")

	return cmd
}

func (c *cli) setup() demo.Setup {
	return demo.Setup{Logger: c.logger}
}

// renderDemo mounts the named demo, replays clicks and returns the root's
// inner markup.
func renderDemo(name string, clicks []string, setup demo.Setup, opts memdom.HTMLOptions) (string, error) {
	factory, err := demo.Lookup(name)
	if err != nil {
		return "", err
	}

	doc := memdom.New("body")
	a, err := factory(doc, doc.Root(), setup)
	if err != nil {
		return "", err
	}
	defer a.Close()

	for _, class := range clicks {
		el := doc.Root().Find(memdom.ByProperty("class", class))
		if el == nil {
			return "", errors.New("E401").WithDetailf("no element with class %q", class)
		}
		el.Click()
		if err := a.Err(); err != nil {
			return "", err
		}
	}

	return doc.Root().InnerHTML(opts), nil
}
