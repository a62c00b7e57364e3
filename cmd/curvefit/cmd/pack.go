package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezNNP/curvefit/dataset"
	"github.com/ezNNP/curvefit/format"
	"github.com/ezNNP/curvefit/internal/pointio"
)

const snapshotExt = ".cfps"

func newPackCmd(a *app) *cobra.Command {
	var (
		outPath   string
		encoding  string
		bigEndian bool
	)

	cmd := &cobra.Command{
		Use:   "pack FILE",
		Short: "Convert a point file to a snapshot",
		Long: `Convert a CSV, JSON or YAML point file into a checksummed binary snapshot.
The payload codec comes from --compression. Without --out the snapshot is
written next to FILE with the .cfps extension; "-" writes to standard output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			points, err := a.readPoints(cmd, args[0])
			if err != nil {
				return err
			}

			compression, err := a.compression()
			if err != nil {
				return err
			}
			enc, err := format.ParseEncoding(encoding)
			if err != nil {
				return err
			}

			opts := []dataset.Option{
				dataset.WithCompression(compression),
				dataset.WithEncoding(enc),
			}
			if bigEndian {
				opts = append(opts, dataset.WithBigEndian())
			}

			var buf bytes.Buffer
			if err := pointio.Write(&buf, points, format.InputSnapshot, opts...); err != nil {
				return err
			}

			if outPath == "" {
				outPath = snapshotPath(args[0])
			}
			if err := writeOutput(cmd, outPath, buf.Bytes()); err != nil {
				return err
			}
			a.logger.Info("packed points",
				"source", args[0], "out", outPath, "count", len(points),
				"compression", compression, "encoding", enc, "bytes", buf.Len())

			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "snapshot path (default: FILE with .cfps extension)")
	cmd.Flags().StringVar(&encoding, "encoding", "raw", "column encoding: raw or gorilla")
	cmd.Flags().BoolVar(&bigEndian, "big-endian", false, "write big-endian header and columns")

	return cmd
}

func newUnpackCmd(a *app) *cobra.Command {
	var (
		outPath  string
		toFormat string
		info     bool
	)

	cmd := &cobra.Command{
		Use:   "unpack FILE",
		Short: "Convert a snapshot to a point file",
		Long: `Decode a snapshot and write its points as CSV, JSON or YAML. The output
format comes from --to, else from the --out extension, else CSV. With --info
only the snapshot header and point-set fingerprint are printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}

			if info {
				header, err := dataset.ParseHeader(data)
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}
				points, err := dataset.Decode(data)
				if err != nil {
					return fmt.Errorf("%s: %w", args[0], err)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, header)
				fmt.Fprintf(out, "fingerprint %016x\n", dataset.Fingerprint(points))

				return nil
			}

			points, err := pointio.Read(bytes.NewReader(data), format.InputSnapshot)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			target, err := outputFormat(toFormat, outPath)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := pointio.Write(&buf, points, target); err != nil {
				return err
			}
			if outPath == "" {
				outPath = stdioPath
			}
			if err := writeOutput(cmd, outPath, buf.Bytes()); err != nil {
				return err
			}
			a.logger.Info("unpacked points", "source", args[0], "out", outPath, "format", target, "count", len(points))

			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output path (default: standard output)")
	cmd.Flags().StringVar(&toFormat, "to", "", "output format: csv, json or yaml")
	cmd.Flags().BoolVar(&info, "info", false, "print the snapshot header instead of the points")

	return cmd
}

// snapshotPath replaces the extension of path with .cfps.
func snapshotPath(path string) string {
	if path == stdioPath {
		return stdioPath
	}

	return strings.TrimSuffix(path, filepath.Ext(path)) + snapshotExt
}

func outputFormat(name, outPath string) (format.InputFormat, error) {
	var (
		f   format.InputFormat
		err error
	)
	switch {
	case name != "":
		f, err = format.ParseInputFormat(name)
	case outPath != "" && outPath != stdioPath:
		f, err = format.DetectInputFormat(outPath)
	default:
		return format.InputCSV, nil
	}
	if err != nil {
		return 0, err
	}
	if f == format.InputSnapshot {
		return 0, fmt.Errorf("unpack writes csv, json or yaml, not %s", f)
	}

	return f, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == stdioPath {
		return io.ReadAll(cmd.InOrStdin())
	}

	return os.ReadFile(path)
}

func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == stdioPath {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	return os.WriteFile(path, data, 0o644) //nolint:gosec
}
