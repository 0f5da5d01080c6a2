package app

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/bvisness/keycast/app/core"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// A session file holds one JSON object per line:
//
//	{"t":0.125,"type":"key","code":"KEY_A","pressed":true}
//
// t is the offset in seconds from the start of the recording.

var ErrBadRecord = errors.New("bad session record")

func EncodeEvent(ev core.InputEvent, at time.Duration) (string, error) {
	line, err := sjson.Set("{}", "t", math.Round(at.Seconds()*1e6)/1e6)
	if err != nil {
		return "", err
	}

	set := func(path string, v any) {
		if err == nil {
			line, err = sjson.Set(line, path, v)
		}
	}
	switch ev := ev.(type) {
	case core.Motion:
		set("type", "motion")
		set("x", ev.X)
		set("y", ev.Y)
	case core.Key:
		set("type", "key")
		set("code", ev.Code)
		set("pressed", ev.Pressed)
	case core.Button:
		set("type", "button")
		set("button", ev.Code.String())
		set("pressed", ev.Pressed)
	case core.Wheel:
		set("type", "wheel")
		set("direction", int(ev.Direction))
	case core.IconButton:
		set("type", "icon")
		set("button", ev.Code.String())
		set("pressed", ev.Pressed)
		set("rel_x", ev.RelX)
		set("rel_y", ev.RelY)
	default:
		return "", fmt.Errorf("%w: cannot encode %T", ErrBadRecord, ev)
	}
	return line, err
}

func parseButton(name string) (core.MouseButton, error) {
	for _, b := range []core.MouseButton{core.ButtonLeft, core.ButtonMiddle, core.ButtonRight} {
		if b.String() == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown button %q", ErrBadRecord, name)
}

func DecodeEvent(line string) (core.InputEvent, time.Duration, error) {
	if !gjson.Valid(line) {
		return nil, 0, fmt.Errorf("%w: invalid JSON", ErrBadRecord)
	}
	rec := gjson.Parse(line)
	at := time.Duration(math.Round(rec.Get("t").Float() * float64(time.Second)))

	switch kind := rec.Get("type").String(); kind {
	case "motion":
		return core.Motion{X: rec.Get("x").Float(), Y: rec.Get("y").Float()}, at, nil
	case "key":
		code := rec.Get("code").String()
		if code == "" {
			return nil, 0, fmt.Errorf("%w: key without code", ErrBadRecord)
		}
		return core.Key{Code: code, Pressed: rec.Get("pressed").Bool()}, at, nil
	case "button", "icon":
		btn, err := parseButton(rec.Get("button").String())
		if err != nil {
			return nil, 0, err
		}
		if kind == "icon" {
			return core.IconButton{
				Code:    btn,
				Pressed: rec.Get("pressed").Bool(),
				RelX:    rec.Get("rel_x").Float(),
				RelY:    rec.Get("rel_y").Float(),
			}, at, nil
		}
		return core.Button{Code: btn, Pressed: rec.Get("pressed").Bool()}, at, nil
	case "wheel":
		dir := core.WheelDirection(rec.Get("direction").Int())
		if dir != core.WheelForward && dir != core.WheelBackward {
			return nil, 0, fmt.Errorf("%w: wheel direction %d", ErrBadRecord, dir)
		}
		return core.Wheel{Direction: dir}, at, nil
	default:
		return nil, 0, fmt.Errorf("%w: unknown type %q", ErrBadRecord, kind)
	}
}

type recordedEvent struct {
	at time.Duration
	ev core.InputEvent
}

// ReadSession parses a session. Bad lines are logged and skipped; blank lines
// and lines starting with # are ignored.
func ReadSession(r io.Reader) ([]recordedEvent, error) {
	var res []recordedEvent
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, at, err := DecodeEvent(line)
		if err != nil {
			replayLogger.Warnf("line %d: %v", lineNo, err)
			continue
		}
		res = append(res, recordedEvent{at: at, ev: ev})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	return res, nil
}
