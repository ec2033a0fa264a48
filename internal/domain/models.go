package domain

import "time"

// BackendState represents the playback state reported by a player backend
type BackendState int

const (
	// StateStopped indicates nothing is loaded or the pipeline was torn down
	StateStopped BackendState = iota
	// StateLoading indicates playback was requested but not yet confirmed
	StateLoading
	// StatePaused indicates the pipeline is prerolled and paused
	StatePaused
	// StatePlaying indicates the pipeline is playing
	StatePlaying
	// StateBuffering indicates the pipeline is filling its buffer
	StateBuffering
	// StateError indicates the pipeline reported a fatal error
	StateError
)

func (s BackendState) String() string {
	switch s {
	case StateStopped:
		return "Stopped"
	case StateLoading:
		return "Loading"
	case StatePaused:
		return "Paused"
	case StatePlaying:
		return "Playing"
	case StateBuffering:
		return "Buffering"
	case StateError:
		return "Error"
	default:
		return "Unknown"
	}
}

// PipelineState mirrors the element states of the multimedia framework.
// The ordering matters: a state is "above" another if it is greater.
type PipelineState int

const (
	PipelineVoidPending PipelineState = iota
	PipelineNull
	PipelineReady
	PipelinePaused
	PipelinePlaying
)

func (s PipelineState) String() string {
	switch s {
	case PipelineNull:
		return "NULL"
	case PipelineReady:
		return "READY"
	case PipelinePaused:
		return "PAUSED"
	case PipelinePlaying:
		return "PLAYING"
	default:
		return "VOID_PENDING"
	}
}

// SeekFlags is a bitmask of seek behaviours
type SeekFlags int

const (
	SeekFlagNone SeekFlags = 0
	// SeekFlagFlush discards queued data before seeking
	SeekFlagFlush SeekFlags = 1 << 0
	// SeekFlagKeyUnit snaps the seek target to the nearest keyframe
	SeekFlagKeyUnit SeekFlags = 1 << 2
)

// MessageKind identifies the type of a bus message
type MessageKind int

const (
	MessageUnknown MessageKind = iota
	MessageBuffering
	MessageStateChanged
	MessageDurationChanged
	MessageWarning
	MessageError
	MessageEOS
)

func (k MessageKind) String() string {
	switch k {
	case MessageBuffering:
		return "buffering"
	case MessageStateChanged:
		return "state-changed"
	case MessageDurationChanged:
		return "duration-changed"
	case MessageWarning:
		return "warning"
	case MessageError:
		return "error"
	case MessageEOS:
		return "eos"
	default:
		return "unknown"
	}
}

// Message is a bus message already parsed out of the framework's representation.
// Only the fields relevant to Kind are set.
type Message struct {
	Kind MessageKind
	// Source is the name of the object that posted the message
	Source string
	// Percent is the buffer level for MessageBuffering (0-100)
	Percent int
	// OldState and NewState are set for MessageStateChanged
	OldState PipelineState
	NewState PipelineState
	// Err carries the payload of MessageWarning and MessageError
	Err error
	// Debug is the optional debug string attached to warnings and errors
	Debug string
}

// Property names an observable backend property
type Property string

const (
	PropVolume     Property = "volume"
	PropBufferFill Property = "buffer-fill"
	PropDuration   Property = "duration"
	PropPosition   Property = "position"
	PropSeekable   Property = "seekable"
	PropState      Property = "state"
	PropURI        Property = "uri"
)

// HandlerID identifies a connected property observer
type HandlerID uint64

// SourceID identifies a repeating timer registered on the host loop
type SourceID uint64

// ElementNames lists the framework element kinds a backend requests by name
type ElementNames struct {
	Pipeline  string
	VideoSink string
	Upload    string
}

// BackendOptions are the tunables handed to a backend factory
type BackendOptions struct {
	// Volume is the initial volume, pushed into the pipeline at construction
	Volume float64
	// PollInterval is the period of the position poller
	PollInterval time.Duration
	Elements     ElementNames
}
