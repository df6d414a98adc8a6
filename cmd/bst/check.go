package bst

import (
	"math/rand"

	"github.com/cockroachdb/errors"
	"github.com/seipan/bst/bst"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run random inserts and erases and validate the tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cmd.Flags().GetInt("N")
		if err != nil {
			return err
		}
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}
		return runCheck(n, seed)
	},
}

// runCheck inserts n random values, erases about half of them and compares
// the tree with a clone taken before the erases.
func runCheck(n int, seed int64) error {
	r := rand.New(rand.NewSource(seed))
	tr := bst.New[int]()
	for i := 0; i < n; i++ {
		tr.Insert(r.Intn(n+1), false)
	}
	if err := tr.Validate(); err != nil {
		return errors.Wrap(err, "after inserts")
	}
	before := tr.Clone()

	erased := 0
	for it := tr.Begin(); it.Valid(); {
		if r.Intn(2) == 0 {
			it = tr.Erase(it)
			erased++
			continue
		}
		it.Next()
	}
	if err := tr.Validate(); err != nil {
		return errors.Wrap(err, "after erases")
	}
	if err := before.Validate(); err != nil {
		return errors.Wrap(err, "clone")
	}
	if before.Len() != n || tr.Len() != n-erased {
		return errors.Newf("sizes: clone=%d tree=%d, want %d and %d", before.Len(), tr.Len(), n, n-erased)
	}
	logrus.WithFields(logrus.Fields{
		"n":      n,
		"erased": erased,
		"height": before.Height(),
	}).Info("tree ok")
	return nil
}

func init() {
	checkCmd.Flags().IntP("N", "N", 1000, "number of values to insert")
	checkCmd.Flags().Int64("seed", 1, "random seed")
}
