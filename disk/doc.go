// Package disk selects approximation disks on the real line for a linear
// differential operator. Disks come from a fixed canonical packing — the
// center is an odd multiple of the radius, and the radius is a power of
// two — so that a given real point always maps to the same disk, no matter
// in which order queries arrive. That determinism is what makes disk
// centers usable as cache keys.
//
// 🚀 Selection:
//
//	A disk of radius 2^expo is acceptable when twice its radius does not
//	exceed the center's distance to the nearest singularity of the
//	operator. Locate starts from the largest radius allowed by the point's
//	own distance to the singularities (and the configured cap) and halves
//	it until the candidate centered at the nearest odd multiple of 2^expo
//	is acceptable. Any disk of the packing that contains the point and
//	satisfies the margin condition is therefore no larger than the one
//	returned.
//
// ⚙️ Certification:
//
//	Acceptance and containment are proved with conservative ball
//	comparisons: a disk is returned only when dist/2 ≥ rad and
//	|pt − center| ≤ rad both hold provably. Thick input points that
//	straddle a disk boundary cannot be certified and yield ErrNoDisk.
package disk
