package bst

import (
	"fmt"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/seipan/bst/bst"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var printCmd = &cobra.Command{
	Use:   "print [value...]",
	Short: "Insert the given integers in order and draw the resulting tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		unique, err := cmd.Flags().GetBool("unique")
		if err != nil {
			return err
		}
		erase, err := cmd.Flags().GetIntSlice("erase")
		if err != nil {
			return err
		}
		values, err := parseInts(args)
		if err != nil {
			return err
		}

		tr := bst.New[int]()
		for _, v := range values {
			if _, ok := tr.Insert(v, unique); !ok {
				logrus.WithField("value", v).Debug("duplicate skipped")
			}
		}
		for _, v := range erase {
			if _, ok := tr.Delete(v); !ok {
				logrus.WithField("value", v).Warn("not in tree")
			}
		}

		out := cmd.OutOrStdout()
		if err := tr.Print(out); err != nil {
			return err
		}
		for v := range tr.All() {
			fmt.Fprintf(out, "%d ", v)
		}
		fmt.Fprintf(out, "\nsize=%d height=%d\n", tr.Len(), tr.Height())
		return nil
	},
}

func parseInts(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing %q", a)
		}
		values = append(values, v)
	}
	return values, nil
}

func init() {
	printCmd.Flags().Bool("unique", false, "skip values that are already in the tree")
	printCmd.Flags().IntSlice("erase", nil, "values to erase after inserting")
}
