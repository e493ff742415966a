package policy

// StreamPlan is the re-encode decision for one stream.
type StreamPlan struct {
	Kind   StreamKind
	Source string  // codec reported by the probe, may be empty
	Target string  // CopyCodec or an encoder name
	Params []Param // set only when Target is not CopyCodec
}

// IsCopy reports whether the stream passes through unchanged.
func (s StreamPlan) IsCopy() bool {
	return s.Target == CopyCodec
}

// Plan is the re-encode decision for a file.
type Plan struct {
	Video StreamPlan
	Audio StreamPlan
}

// NeedsReencode is false when both streams are copied; the file is then left untouched.
func (p Plan) NeedsReencode() bool {
	return !p.Video.IsCopy() || !p.Audio.IsCopy()
}

// Streams returns the stream plans in transcode argument order.
func (p Plan) Streams() []StreamPlan {
	return []StreamPlan{p.Video, p.Audio}
}

// Decide builds the re-encode plan for the detected codecs.
func (p *Policy) Decide(videoCodec, audioCodec string) Plan {
	return Plan{
		Video: p.stream(Video, videoCodec),
		Audio: p.stream(Audio, audioCodec),
	}
}

func (p *Policy) stream(kind StreamKind, source string) StreamPlan {
	sp := StreamPlan{
		Kind:   kind,
		Source: source,
		Target: p.Target(kind, source),
	}
	if !sp.IsCopy() {
		sp.Params = p.Params(kind, sp.Target)
	}
	return sp
}
