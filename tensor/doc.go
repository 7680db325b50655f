// Package tensor provides a minimal row-major n-dimensional float64 array.
//
// Arrays carry brain-recording data through the searchlight pipeline:
// item arrays ([items, ...features]), fold tensors ([folds, items, ...features])
// and the ephemeral searchlight patches cut from them.
//
// # Views and Copies
//
// Reshape returns a view that shares the backing slice. Take and Slice always
// copy, so patches never alias caller data:
//
//	x, _ := tensor.New([]int{3, 4, 10}, data) // items x series x times
//	patch, _ := x.Take(1, []int{0, 2})        // series 0 and 2
//	win, _ := patch.Slice(2, 3, 7)            // samples [3, 7)
//	flat, _ := win.Reshape(3, -1)             // items x features
package tensor
