package main

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/vybium/vybium-rescue/internal/vybium-rescue/codec"
	"github.com/vybium/vybium-rescue/internal/vybium-rescue/decoder"
	"github.com/vybium/vybium-rescue/internal/vybium-rescue/log"
	vybiumrescue "github.com/vybium/vybium-rescue/pkg/vybium-rescue"
)

func newV1Cmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "v1 <u128,u128,u128,u128>",
		Short: "Hash four 128-bit decimals, print the digest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			digest, err := opts.adapter.RescueV1(args[0])
			if err != nil {
				return err
			}
			text, err := codec.EncodeText(digest, opts.adapter.Encoding())
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
}

func newV2Cmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "v2 <u64,...,u64>",
		Short: "Hash eight 64-bit decimals, print four 64-bit digest words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := opts.adapter.RescueV2(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), formatWords(words))
			return err
		},
	}
}

func newV3Cmd(opts *options) *cobra.Command {
	var (
		raw      bool
		hexInput bool
	)
	cmd := &cobra.Command{
		Use:   "v3 <text>",
		Short: "Hash a byte string, print the digest as text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := []byte(args[0])
			if hexInput {
				decoded, err := hex.DecodeString(args[0])
				if err != nil {
					return fmt.Errorf("decode hex input: %w", err)
				}
				input = decoded
			}

			hash := opts.adapter.RescueV3
			if raw {
				hash = opts.adapter.RescueV3Raw
			}
			text, err := hash(input)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the digest bytes as-is (fails unless they are valid UTF-8)")
	cmd.Flags().BoolVar(&hexInput, "hex", false, "argument is hex-encoded bytes")
	return cmd
}

func newBatchCmd(opts *options) *cobra.Command {
	var variant string
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Hash one input per stdin line, print one digest per line in input order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lines, err := readLines(cmd.InOrStdin())
			if err != nil {
				return err
			}

			hash, err := opts.batchFunc(variant)
			if err != nil {
				return err
			}

			results, err := vybiumrescue.HashBatch(cmd.Context(), lines, opts.config.Workers, hash)
			if err != nil {
				return err
			}
			log.CLI.Info().Int("inputs", len(lines)).Str("variant", variant).Msg("batch hashed")

			w := bufio.NewWriter(cmd.OutOrStdout())
			for _, r := range results {
				if _, err := fmt.Fprintln(w, r); err != nil {
					return err
				}
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&variant, "variant", "v1", "v1, v2 or v3")
	return cmd
}

// batchFunc returns a line -> output-line function for variant.
func (o *options) batchFunc(variant string) (func(string) (string, error), error) {
	a := o.adapter
	switch variant {
	case "v1":
		return func(line string) (string, error) {
			d, err := a.RescueV1(line)
			if err != nil {
				return "", err
			}
			return codec.EncodeText(d, a.Encoding())
		}, nil
	case "v2":
		return func(line string) (string, error) {
			words, err := a.RescueV2(line)
			if err != nil {
				return "", err
			}
			return formatWords(words), nil
		}, nil
	case "v3":
		return func(line string) (string, error) {
			return a.RescueV3([]byte(line))
		}, nil
	default:
		return nil, fmt.Errorf("unknown variant %q, want v1, v2 or v3", variant)
	}
}

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "Print the decoder register bit layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Field", "Bits", "Width", "Mask", "Meaning"})
			for _, f := range decoder.Layout() {
				t.AppendRow(table.Row{
					f.Name,
					f.Range.String(),
					f.Range.Width(),
					fmt.Sprintf("0x%016x", uint64(f.Range.Mask())),
					f.Meaning,
				})
			}
			t.AppendFooter(table.Row{"", "", decoder.RegisterWidth, "", "register width"})
			t.Render()
			return nil
		},
	}
}

func formatWords(words [vybiumrescue.DigestElements]uint64) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = strconv.FormatUint(w, 10)
	}
	return strings.Join(parts, ",")
}

// readLines returns stdin lines; a trailing newline does not add an input.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
