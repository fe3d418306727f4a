// ABOUTME: Version and product identification
// ABOUTME: Version is overridden at build time via ldflags
package version

// Version of the player, set with -ldflags "-X .../internal/version.Version=..."
var Version = "0.1.0"

const (
	// Product is the program name shown to users
	Product = "tuneloop"

	// Manufacturer is the project owner
	Manufacturer = "harperreed"
)

// String is the one-line version banner
func String() string {
	return Product + " " + Version
}
