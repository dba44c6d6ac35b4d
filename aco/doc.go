// Package aco finds near-optimal closed tours over a fixed set of locations
// using Ant Colony Optimization (Ant System with elitist reinforcement).
//
// Given an n×n non-negative distance matrix, an Engine repeatedly:
//
//  1. lets a population of ants build tours from vertex 0, each step drawn
//     at random with probability ∝ τ(i,j)^α · (1/(d(i,j)+ε))^β over the
//     unvisited vertices (roulette-wheel sampling over the cumulative
//     distribution);
//  2. scores every tour by summing its edge distances;
//  3. reinforces the edges of the Elite shortest tours by 1/cost;
//  4. evaporates the whole pheromone matrix by the factor (1−Decay);
//  5. records the best tour seen so far in a convergence history.
//
// Guarantees:
//   - Every returned tour has length n+1, starts and ends at vertex 0 and
//     visits every other vertex exactly once.
//   - History is non-increasing and has one entry per completed iteration.
//   - Pheromone never becomes negative.
//   - Same seed (or same injected Rand sequence) ⇒ identical results, for
//     any number of construction workers.
//
// Configuration errors are reported by NewEngine and match ErrConfiguration
// via errors.Is. A valid Engine always produces a result; Run only fails when
// aborted by its context or an OnIteration hook, and even then it returns the
// best tour of the iterations completed so far.
//
// The package never logs; use WithOnIteration to observe progress.
package aco
