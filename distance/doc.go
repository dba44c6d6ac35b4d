// Package distance supplies the n×n distance matrices the optimizer consumes.
//
// Sources:
//   - HaversineProvider: great-circle kilometres between coordinates.
//   - LoadJSON / LoadCSV: precomputed matrices from files.
//   - LoadLocations: named coordinates for a Provider.
//
// Every source returns a matrix that satisfies the optimizer's input
// contract: square, finite and non-negative, with unreachable pairs encoded
// as the finite Unreachable sentinel (see Sanitize), never as Inf or NaN.
package distance
