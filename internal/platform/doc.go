// Package platform is the provider of units that are compiled into the binary
// rather than found on disk.
//
// Go packages contribute platform units by implementing Module and
// registering a Factory per unit name. The provider builds each unit at most
// once and hands out its own cached handle on every later request.
package platform
