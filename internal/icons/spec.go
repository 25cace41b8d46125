// Package icons resizes a base image into the application icon set and packages
// the macOS and Windows icon containers.
package icons

const (
	// DefaultInputPath is the base image read when no input is configured.
	DefaultInputPath = "src-tauri/icons/icon.png"
	// DefaultOutputDirectory receives every generated artifact.
	DefaultOutputDirectory = "src-tauri/icons"
	// IcnsFileName is the macOS icon container name.
	IcnsFileName = "icon.icns"
	// IcoFileName is the Windows icon container name.
	IcoFileName = "icon.ico"
)

// Spec names one square raster output.
type Spec struct {
	FileName string
	Size     int
}

// OutputSpecs lists the raster files written next to the containers.
var OutputSpecs = []Spec{
	{FileName: "32x32.png", Size: 32},
	{FileName: "128x128.png", Size: 128},
	{FileName: "128x128@2x.png", Size: 256},
	{FileName: "Square30x30Logo.png", Size: 30},
	{FileName: "Square44x44Logo.png", Size: 44},
	{FileName: "Square71x71Logo.png", Size: 71},
	{FileName: "Square89x89Logo.png", Size: 89},
	{FileName: "Square107x107Logo.png", Size: 107},
	{FileName: "Square142x142Logo.png", Size: 142},
	{FileName: "Square150x150Logo.png", Size: 150},
	{FileName: "Square284x284Logo.png", Size: 284},
	{FileName: "Square310x310Logo.png", Size: 310},
	{FileName: "StoreLogo.png", Size: 175},
}

// IcnsSizes are the frame sizes handed to the macOS packager.
var IcnsSizes = []int{16, 32, 64, 128, 256, 512, 1024}

// IcoSizes are the frame sizes embedded in the Windows icon.
var IcoSizes = []int{16, 32, 48, 64, 128}
