package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	libraryclient "video-library/apps/library-client"
	"video-library/shared/logging"

	"github.com/spf13/cobra"
)

var errReported = errors.New("failed")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var serverURL, logLevel string

	root := &cobra.Command{
		Use:           "vidlib",
		Short:         "Browse and add videos in a video library server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Configure(logging.Config{Level: logLevel, Output: os.Stderr, Service: "vidlib"})
		},
	}

	defaultURL := os.Getenv("VIDEO_LIBRARY_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:3001"
	}
	root.PersistentFlags().StringVar(&serverURL, "server", defaultURL, "library server base URL")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level")

	client := func() *libraryclient.Client {
		return libraryclient.NewClient(serverURL, nil)
	}

	root.AddCommand(newListCmd(client), newCreateCmd(client), newIdeasCmd(client))
	return root
}

func newListCmd(client func() *libraryclient.Client) *cobra.Command {
	var sortFlag string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List videos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			order, err := libraryclient.ParseSortOrder(sortFlag)
			if err != nil {
				return err
			}
			lib := libraryclient.NewLibrary(client())
			lib.Mount(cmd.Context())

			state := lib.State()
			fmt.Fprintln(cmd.OutOrStdout(), libraryclient.RenderLibrary(state, order))
			if state.Error != "" {
				return errReported
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&sortFlag, "sort", string(libraryclient.SortNewest), "sort order: newest or oldest")
	return cmd
}

func newCreateCmd(client func() *libraryclient.Client) *cobra.Command {
	var title string
	var tags []string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a video",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form := &libraryclient.VideoForm{Title: title}
			for _, t := range tags {
				form.AddTag(t)
			}
			return submit(cmd, client(), form)
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "video title")
	cmd.Flags().StringArrayVar(&tags, "tag", nil, "tag to add (repeatable)")
	return cmd
}

func newIdeasCmd(client func() *libraryclient.Client) *cobra.Command {
	var use int
	var create bool
	cmd := &cobra.Command{
		Use:   "ideas <topic>",
		Short: "Generate AI video ideas for a topic",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			browser := libraryclient.NewIdeaBrowser(client())
			if !browser.Generate(cmd.Context(), strings.Join(args, " ")) {
				fmt.Fprintln(out, libraryclient.RenderIdeas(browser))
				return errReported
			}
			fmt.Fprintln(out, libraryclient.RenderIdeas(browser))

			if use == 0 {
				return nil
			}
			form, err := browser.Use(use - 1)
			if err != nil {
				return err
			}
			if !create {
				fmt.Fprintf(out, "Prefilled: --title %q", form.Title)
				for _, t := range form.Tags {
					fmt.Fprintf(out, " --tag %q", t)
				}
				fmt.Fprintln(out)
				return nil
			}
			return submit(cmd, client(), form)
		},
	}
	cmd.Flags().IntVar(&use, "use", 0, "promote idea N (1-based) into a create form")
	cmd.Flags().BoolVar(&create, "create", false, "with --use, create the video right away")
	return cmd
}

// submit validates form locally and, if it passes, creates the video and
// shows the updated library.
func submit(cmd *cobra.Command, api *libraryclient.Client, form *libraryclient.VideoForm) error {
	out := cmd.OutOrStdout()

	in, ok := form.Validate()
	if !ok {
		fmt.Fprintln(out, libraryclient.RenderFormErrors(form.Errors))
		return errReported
	}

	lib := libraryclient.NewLibrary(api)
	lib.Mount(cmd.Context())
	if !lib.Create(cmd.Context(), in) {
		fmt.Fprintln(out, lib.State().CreateError)
		return errReported
	}

	fmt.Fprintf(out, "Created %q\n\n", in.Title)
	fmt.Fprintln(out, libraryclient.RenderLibrary(lib.State(), libraryclient.SortNewest))
	return nil
}
