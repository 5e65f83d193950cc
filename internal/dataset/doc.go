// Package dataset generates the synthetic inputs handed to functions under test.
//
// A dataset of size n is n distinct integers drawn without replacement from
// [0, Universe). Every Generator owns its own seeded source, so two generators
// built from the same seed yield identical dataset sequences for identical
// request sequences:
//
//	gen := dataset.New(dataset.DefaultSeed)
//	data, err := gen.Generate(10_000)
//
// The generator state advances with every call. A harness that shares one
// generator across several functions therefore hands each function different
// data at the same size, which matches how the datasets are consumed.
package dataset
