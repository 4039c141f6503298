// Package extension holds the registry of action services a host can call.
//
// Services are registered explicitly, there is no package level registry;
// the root sumuuid package builds one with the summation and identifier
// services, so most applications do not need to import this package directly.
package extension
