// Package mock provides test doubles for the ai package interfaces.
//
// The doubles generate deterministic output by default and support behavior
// injection via function fields, so pipeline logic can be tested without
// external AI services.
package mock
