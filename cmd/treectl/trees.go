package main

import (
	"fmt"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Trees"
	"github.com/g-m-twostay/go-collections/Trees/BTree"
)

// tree is the part of the tree surface the commands use.
type tree interface {
	Go_Collections.Ordered[int]
	Height() int
	Pretty() string
	Corrupt() bool
}

func newTree(kind string, reverse bool, degree int, opts []Go_Collections.Option) (tree, error) {
	cmp := Go_Collections.Comparator[int](Go_Collections.Compare[int])
	if reverse {
		cmp = Go_Collections.Reverse(cmp)
	}
	switch kind {
	case "bst":
		return Trees.NewBinarySearchTree(cmp, opts...), nil
	case "avl":
		return Trees.NewAVLTree(cmp, opts...), nil
	case "splay":
		return Trees.NewSplayTree(cmp, opts...), nil
	case "btree":
		b, err := BTree.New(degree, cmp, opts...)
		if err != nil {
			return nil, err
		}
		return b, nil
	}
	return nil, fmt.Errorf("unknown tree kind %q: %w", kind, Go_Collections.ErrInvalidArgument)
}
