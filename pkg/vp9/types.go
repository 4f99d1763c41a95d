// Copyright (c) 2010 The WebM project authors. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the LICENSE file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package vp9

// ENTROPY_CONTEXT is one slot of above/left coefficient-coding state.
type ENTROPY_CONTEXT int8

// ENTROPY_CONTEXT_PLANES holds the context slots one 16x16 region
// contributes along one axis: four luma slots and two per chroma plane.
type ENTROPY_CONTEXT_PLANES struct {
	Y [4]ENTROPY_CONTEXT
	U [2]ENTROPY_CONTEXT
	V [2]ENTROPY_CONTEXT
}
