// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

// GaussianGen returns gaussian (normal) random number with given
// mean and sigma standard deviation.
// Optionally can pass a single Rand interface to use --
// otherwise uses system global Rand source.
func GaussianGen(mean, sigma float64, randOpt ...Rand) float64 {
	return mean + sigma*pick(randOpt).NormFloat64()
}

// GaussianNoise returns n independent gaussian samples with
// mean 0 and the given sigma.
func GaussianNoise(n int, sigma float64, randOpt ...Rand) []float64 {
	rnd := pick(randOpt)
	noise := make([]float64, n)
	for i := range noise {
		noise[i] = sigma * rnd.NormFloat64()
	}
	return noise
}

func pick(randOpt []Rand) Rand {
	if len(randOpt) == 0 || randOpt[0] == nil {
		return NewGlobalRand()
	}
	return randOpt[0]
}
