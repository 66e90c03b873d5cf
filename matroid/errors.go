// SPDX-License-Identifier: MIT

package matroid

import "fmt"

const (
	opClique    = "CliqueNumber"
	opMaximal   = "MaximalCliques"
	opLaman     = "CheckLaman"
	opCircuits  = "FindCircuits"
	opMinDim    = "ComputeMinimalDimension"
	opTree      = "IsTree"
	opAnalyze   = "Analyze"
	opAdjacency = "adjacency"
)

func matroidErrorf(tag string, err error) error {
	return fmt.Errorf("matroid: %s: %w", tag, err)
}
