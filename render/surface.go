package render

import "fmt"

// PresentMode names a GPU presentation mode. The window/event surface
// prefers, in order, Mailbox -> Immediate -> FIFO, falling back to the
// next entry when the platform doesn't support it (spec §"Window/event
// surface"). ebiten does not expose present-mode selection directly — it
// always runs a vsync'd swap chain — so PresentModeFIFO is what this
// engine's façade reports once ebiten is actually driving the window.
type PresentMode int

const (
	PresentModeFIFO PresentMode = iota
	PresentModeMailbox
	PresentModeImmediate
)

func (m PresentMode) String() string {
	switch m {
	case PresentModeMailbox:
		return "mailbox"
	case PresentModeImmediate:
		return "immediate"
	default:
		return "fifo"
	}
}

// PreferredPresentModes is the fallback order a surface negotiates
// against platform support, per spec: "fall back in order Mailbox ->
// Immediate -> FIFO based on support".
var PreferredPresentModes = []PresentMode{PresentModeMailbox, PresentModeImmediate, PresentModeFIFO}

// Backend names a GPU backend the surface may run on. Spec: "Backend
// selection prefers Vulkan/Metal/DX12; a permissive fallback is
// acceptable". ebiten selects its own backend per platform at startup, so
// these values only label a backend; nothing in the package selects one
// (NewSurface records BackendAuto).
type Backend int

const (
	BackendAuto Backend = iota
	BackendVulkan
	BackendMetal
	BackendDX12
	BackendOpenGL
)

func (b Backend) String() string {
	switch b {
	case BackendVulkan:
		return "vulkan"
	case BackendMetal:
		return "metal"
	case BackendDX12:
		return "dx12"
	case BackendOpenGL:
		return "opengl"
	default:
		return "auto"
	}
}

// SurfaceErrorKind classifies a surface failure (SPEC_FULL.md §4.2
// "Failure modes").
type SurfaceErrorKind int

const (
	// SurfaceLost means the surface texture could not be acquired this
	// frame; recover by recreating the surface and skipping the frame.
	SurfaceLost SurfaceErrorKind = iota
	// SurfaceOutdated means the surface no longer matches the window's
	// current size/format; recover the same way as SurfaceLost.
	SurfaceOutdated
	// DeviceLost is unrecoverable: the orchestrator's lifecycle must
	// transition to Error.
	DeviceLost
)

func (k SurfaceErrorKind) String() string {
	switch k {
	case SurfaceLost:
		return "surface lost"
	case SurfaceOutdated:
		return "surface outdated"
	case DeviceLost:
		return "device lost"
	default:
		return "unknown surface error"
	}
}

// SurfaceError reports a GPU surface problem encountered during draw
// submission. Recoverable returns true for SurfaceLost/SurfaceOutdated
// (recreate and skip the frame) and false for DeviceLost (fatal).
type SurfaceError struct {
	Kind SurfaceErrorKind
	Err  error
}

func (e *SurfaceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("render: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("render: %s", e.Kind)
}

func (e *SurfaceError) Recoverable() bool {
	return e.Kind == SurfaceLost || e.Kind == SurfaceOutdated
}

// Surface tracks the logical/physical size negotiation described in
// spec's "Window/event surface" and "Surface resize" example: logical
// size drives layout and the camera view, physical size (logical x scale
// factor) drives the actual backing image ebiten presents.
type Surface struct {
	LogicalWidth, LogicalHeight int
	ScaleFactor                 float64
	PresentMode                 PresentMode
	Backend                     Backend
}

// NewSurface returns a Surface configured for the given logical size and
// scale factor, defaulting to FIFO presentation (vsync) since that's what
// ebiten's swap chain actually provides.
func NewSurface(logicalWidth, logicalHeight int, scaleFactor float64) *Surface {
	return &Surface{
		LogicalWidth:  logicalWidth,
		LogicalHeight: logicalHeight,
		ScaleFactor:   scaleFactor,
		PresentMode:   PresentModeFIFO,
		Backend:       BackendAuto,
	}
}

// PhysicalSize returns the backing image size: logical x scale factor,
// rounded to whole device pixels.
func (s *Surface) PhysicalSize() (w, h int) {
	return int(float64(s.LogicalWidth) * s.ScaleFactor), int(float64(s.LogicalHeight) * s.ScaleFactor)
}

// Resize updates the surface for a physical resize event, recovering the
// logical size from the current scale factor (spec's resize example:
// a physical resize at a known scale factor implies the new logical
// size, not the other way around).
func (s *Surface) Resize(physicalWidth, physicalHeight int) {
	if s.ScaleFactor <= 0 {
		s.ScaleFactor = 1
	}
	s.LogicalWidth = int(float64(physicalWidth) / s.ScaleFactor)
	s.LogicalHeight = int(float64(physicalHeight) / s.ScaleFactor)
}
