package bst

import (
	"math/rand"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/seipan/bst/bst"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	orderRandom  = "random"
	orderSorted  = "sorted"
	orderReverse = "reverse"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time inserts and lookups of N keys in the tree and in a builtin map",
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := cmd.Flags().GetInt("N")
		if err != nil {
			return err
		}
		order, err := cmd.Flags().GetString("order")
		if err != nil {
			return err
		}
		seed, err := cmd.Flags().GetInt64("seed")
		if err != nil {
			return err
		}
		unique, err := cmd.Flags().GetBool("unique")
		if err != nil {
			return err
		}

		keys, err := makeKeys(n, order, seed)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{"n": n, "order": order, "seed": seed}).Debug("generated keys")

		// the tree and the map are separate structures, so they can be timed side by side.
		var g errgroup.Group
		var treeSet, treeGet, mapSet, mapGet time.Duration
		var height int
		g.Go(func() error {
			tr := bst.New[int]()
			treeSet = Measure(func() { SetTree(tr, keys, unique) })
			treeGet = Measure(func() { GetTree(tr, keys) })
			height = tr.Height()
			return tr.Validate()
		})
		g.Go(func() error {
			mp := make(map[int]int, n)
			mapSet = Measure(func() { SetMap(mp, keys) })
			mapGet = Measure(func() { GetMap(mp, keys) })
			return nil
		})
		if err := g.Wait(); err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{"set": treeSet, "get": treeGet, "height": height}).Info("bst")
		logrus.WithFields(logrus.Fields{"set": mapSet, "get": mapGet}).Info("builtin map")
		return nil
	},
}

// makeKeys returns the keys 0..n-1 in the requested order.
func makeKeys(n int, order string, seed int64) ([]int, error) {
	if n < 0 {
		return nil, errors.Errorf("negative key count %d", n)
	}
	keys := make([]int, n)
	switch order {
	case orderSorted:
		for i := range keys {
			keys[i] = i
		}
	case orderReverse:
		for i := range keys {
			keys[i] = n - 1 - i
		}
	case orderRandom:
		copy(keys, rand.New(rand.NewSource(seed)).Perm(n))
	default:
		return nil, errors.Errorf("unknown order %q, want %s, %s or %s", order, orderRandom, orderSorted, orderReverse)
	}
	return keys, nil
}

func SetTree(tr *bst.Tree[int], keys []int, unique bool) {
	for _, k := range keys {
		tr.Insert(k, unique)
	}
}

func GetTree(tr *bst.Tree[int], keys []int) {
	for _, k := range keys {
		tr.Find(k)
	}
}

func SetMap(mp map[int]int, keys []int) {
	for _, k := range keys {
		mp[k] = k
	}
}

func GetMap(mp map[int]int, keys []int) {
	for _, k := range keys {
		_ = mp[k]
	}
}

func Measure(fnc func()) time.Duration {
	start := time.Now()
	fnc()
	return time.Since(start)
}

func init() {
	benchCmd.Flags().IntP("N", "N", 1000, "number of keys in the tree")
	benchCmd.Flags().String("order", orderRandom, "insertion order: random, sorted or reverse")
	benchCmd.Flags().Int64("seed", 1, "seed for the random order")
	benchCmd.Flags().Bool("unique", false, "skip keys that are already in the tree")
}
