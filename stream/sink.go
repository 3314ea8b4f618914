package stream

import "github.com/jbialk/jsonstream/parser"

// SinkValue consumes exactly one complete value from the event stream,
// ignoring its contents. It is how the binder skips unknown fields and
// type-mismatched values without aborting the enclosing parse.
func SinkValue(stream *parser.LexerParser) {
	evt, err := stream.GetNextEvent()
	if err != nil {
		warnf("failed to get an event to sink: %v", err)
		return
	}
	SinkValueEvent(evt, stream)
}

// SinkValueEvent consumes the remainder of the value whose first event
// has already been pulled from the stream.
func SinkValueEvent(evt parser.Event, stream *parser.LexerParser) {
	switch evt.Kind {
	case parser.OBJECT_BEGIN:
		SinkObject(stream)
	case parser.LIST_BEGIN:
		SinkList(stream)
	case parser.VALUE_LITERAL:
		// Nothing further to consume.
	default:
		warnf("unexpected %s event at %s while sinking a value",
			evt.Kind, evt.Token.Location)
	}
}

// SinkObject consumes key/value pairs until the object closes.
func SinkObject(stream *parser.LexerParser) {
	for {
		evt, err := stream.GetNextEvent()
		if err != nil {
			warnf("sink terminated early: %v", err)
			return
		}
		switch evt.Kind {
		case parser.OBJECT_END:
			return
		case parser.OBJECT_KEY:
			SinkValue(stream)
		default:
			warnf("unexpected %s event at %s while sinking an object",
				evt.Kind, evt.Token.Location)
			return
		}
	}
}

// SinkList consumes values until the list closes.
func SinkList(stream *parser.LexerParser) {
	for {
		evt, err := stream.GetNextEvent()
		if err != nil {
			warnf("sink terminated early: %v", err)
			return
		}
		if evt.Kind == parser.LIST_END {
			return
		}
		SinkValueEvent(evt, stream)
	}
}
