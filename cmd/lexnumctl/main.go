// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command lexnumctl is a small demonstration CLI around package
// lexnum: floats and 64-bit integers passed on the command line go
// through the ffi package's Slice boundary shape, the same shape a real
// embedding caller (a decoder, a reader) would use; 8-, 16- and 32-bit
// integers go to lexnum's named wrappers directly.
package main

import (
	"fmt"
	"os"

	"github.com/kloudlabs/lexnum"
	"github.com/kloudlabs/lexnum/ffi"
	"github.com/spf13/cobra"
)

var (
	radix  int
	signed bool
	width  int
)

func main() {
	root := &cobra.Command{
		Use:   "lexnumctl",
		Short: "Parse integer and float literals with lexnum",
	}

	parseInt := &cobra.Command{
		Use:   "parse-int LITERAL",
		Short: "Parse LITERAL as an integer",
		Args:  cobra.ExactArgs(1),
		RunE:  runParseInt,
	}
	parseInt.Flags().IntVar(&radix, "radix", 10, "radix, 2-36")
	parseInt.Flags().BoolVar(&signed, "signed", false, "accept a leading '-'")
	parseInt.Flags().IntVar(&width, "width", 64, "integer width in bits: 8, 16, 32 or 64")

	parseFloat := &cobra.Command{
		Use:   "parse-float LITERAL",
		Short: "Parse LITERAL as a float64",
		Args:  cobra.ExactArgs(1),
		RunE:  runParseFloat,
	}
	parseFloat.Flags().IntVar(&radix, "radix", 10, "radix, 2-36")

	root.AddCommand(parseInt, parseFloat)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runParseInt(cmd *cobra.Command, args []string) error {
	literal := []byte(args[0])
	var (
		v   int64
		u   uint64
		err error
	)
	if signed {
		v, err = parseSignedWidth(literal)
	} else {
		u, err = parseUnsignedWidth(literal)
	}
	if err != nil {
		return reportError(cmd, err)
	}
	if signed {
		fmt.Fprintln(cmd.OutOrStdout(), v)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), u)
	}
	return nil
}

func parseSignedWidth(literal []byte) (int64, error) {
	switch width {
	case 8:
		v, err := lexnum.ParseI8(radix, literal)
		return int64(v), err
	case 16:
		v, err := lexnum.ParseI16(radix, literal)
		return int64(v), err
	case 32:
		v, err := lexnum.ParseI32(radix, literal)
		return int64(v), err
	default:
		return ffi.ParseInt64(ffi.Slice{Bytes: literal, Radix: radix})
	}
}

func parseUnsignedWidth(literal []byte) (uint64, error) {
	switch width {
	case 8:
		v, err := lexnum.ParseU8(radix, literal)
		return uint64(v), err
	case 16:
		v, err := lexnum.ParseU16(radix, literal)
		return uint64(v), err
	case 32:
		v, err := lexnum.ParseU32(radix, literal)
		return uint64(v), err
	default:
		return ffi.ParseUint64(ffi.Slice{Bytes: literal, Radix: radix})
	}
}

func runParseFloat(cmd *cobra.Command, args []string) error {
	v, err := ffi.ParseFloat64(ffi.Slice{Bytes: []byte(args[0]), Radix: radix})
	if err != nil {
		return reportError(cmd, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), v)
	return nil
}

func reportError(cmd *cobra.Command, err error) error {
	if pe, ok := err.(*lexnum.ParseError); ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "lexnumctl: %s at byte %d\n", pe.Code, pe.Index)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "lexnumctl: %v\n", err)
	}
	return err
}
