// Package folds groups repeated observations of items into cross-validation
// folds.
//
// Given an item array with one row per observation and a class label per
// row, Create returns a fold tensor of shape [folds, classes, ...features]
// where every entry is the average of that class's observations assigned to
// the fold. Observations are assigned round-robin in input order, so each
// fold receives an equal share of every class.
//
//	// 12 observations of 3 items, 4 repetitions each, 2 folds.
//	f, err := folds.Create(ctx, x, y, 2, 1)   // f.Shape() == [2, 3, ...]
//
// Without labels every observation is its own item and the data is returned
// as a single fold without copying.
package folds
