// Copyright (c) 2026 ToeiRei
// Little Lemon - restaurant menu browser
// This source code is licensed under the MIT license found in the LICENSE file.

// package menu ties the menu cache together: it populates an empty store
// from the remote document once, answers search/category queries against
// the cached copy, and exports snapshots.
//
// Retry policy: a failed or empty remote fetch leaves the cache empty. The
// next EnsurePopulated call therefore fetches again; there is no other retry
// mechanism and no time- or version-based invalidation.
package menu
