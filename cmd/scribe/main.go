package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/mnott/Scribe/client"
)

var (
	flagLanguage   string
	flagFormat     string
	flagTimestamps bool
	flagCopy       bool
	flagTimeout    time.Duration
	flagProxy      string
)

func main() {
	root := &cobra.Command{
		Use:           "scribe",
		Short:         "Fetch YouTube transcripts without an API key",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().DurationVar(&flagTimeout, "timeout", 60*time.Second, "Overall deadline for the request")
	root.PersistentFlags().StringVar(&flagProxy, "proxy", "", "Proxy URL for all requests")

	transcribe := &cobra.Command{
		Use:   "transcribe <url-or-id>",
		Short: "Download the transcript of a video",
		Args:  cobra.ExactArgs(1),
		RunE:  runTranscribe,
	}
	transcribe.Flags().StringVarP(&flagLanguage, "language", "l", "en", "Caption language code")
	transcribe.Flags().StringVarP(&flagFormat, "format", "f", "text", "Output format: text, srt, or json")
	transcribe.Flags().BoolVar(&flagTimestamps, "timestamps", false, "Prefix each line with [MM:SS] (text format only)")
	transcribe.Flags().BoolVar(&flagCopy, "copy", false, "Also copy the output to the clipboard")

	languages := &cobra.Command{
		Use:   "languages <url-or-id>",
		Short: "List available caption tracks",
		Args:  cobra.ExactArgs(1),
		RunE:  runLanguages,
	}

	root.AddCommand(transcribe, languages)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	c := client.New(client.Config{ProxyURL: flagProxy})
	res, err := c.Transcribe(ctx, args[0], client.TranscribeOptions{
		Language: flagLanguage,
		Format:   client.ResolveFormat(flagFormat),
	})
	if err != nil {
		return err
	}

	out := res.Transcript
	if flagTimestamps && res.Format == client.FormatText {
		out = timedText(res.Segments)
	}

	fmt.Println(out)
	if flagCopy {
		if err := clipboard.WriteAll(out); err != nil {
			fmt.Fprintln(os.Stderr, "Warning: clipboard copy failed:", err)
		}
	}
	return nil
}

func runLanguages(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), flagTimeout)
	defer cancel()

	c := client.New(client.Config{ProxyURL: flagProxy})
	languages, err := c.ListLanguages(ctx, args[0])
	if err != nil {
		return err
	}
	for _, l := range languages {
		kind := "manual"
		if l.IsAutoGenerated {
			kind = "auto-generated"
		}
		fmt.Printf("%-10s %-14s %s\n", l.Code, kind, l.Name)
	}
	return nil
}

// timedText renders one line per segment with a [MM:SS] prefix, layered on
// the plain-text rendering segment by segment.
func timedText(segments []client.Segment) string {
	lines := make([]string, 0, len(segments))
	for _, s := range segments {
		lines = append(lines, fmt.Sprintf("[%s] %s", clockTimestamp(s.StartMs), s.Text))
	}
	return strings.Join(lines, "\n")
}

func clockTimestamp(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSeconds := ms / 1000
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}
