package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/stegano/internal/history"
	"github.com/llehouerou/stegano/internal/imageio"
	"github.com/llehouerou/stegano/internal/stego"
	"github.com/llehouerou/stegano/internal/ui/styles"
)

func slots(n int) string {
	return humanize.Comma(int64(n)) + " slots"
}

func renderResult(res Result) string {
	s := styles.T().S()
	var sb strings.Builder

	sb.WriteString(s.Title.Render(res.Command) + " " + s.Method.Render(res.Method.String()) + "\n")
	sb.WriteString(s.Field("carrier", fmt.Sprintf("%s %s", s.Path.Render(res.Input), res.Carrier)) + "\n")
	if res.Secret != (stego.Size{}) {
		sb.WriteString(s.Field("secret", res.Secret.String()) + "\n")
	}
	if res.Kind != imageio.KindUnknown {
		sb.WriteString(s.Field("stream", fmt.Sprintf("%s, %s", res.Kind, humanize.IBytes(uint64(res.Bytes)))) + "\n")
	} else if res.Bytes > 0 {
		sb.WriteString(s.Field("stream", humanize.IBytes(uint64(res.Bytes))) + "\n")
	}
	if res.Needed > 0 {
		used := float64(res.Needed) / float64(res.Available) * 100
		sb.WriteString(s.Field("used", fmt.Sprintf("%s of %s (%.1f%%)",
			slots(res.Needed), humanize.Comma(int64(res.Available)), used)) + "\n")
	}
	if res.Resized {
		sb.WriteString(s.Field("resized", s.Warning.Render("yes")) + "\n")
	}
	if res.Output != "" {
		sb.WriteString(s.Field("output", s.Path.Render(res.Output)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func renderCapacity(rep CapacityReport) string {
	s := styles.T().S()
	var sb strings.Builder

	sb.WriteString(s.Field("carrier", rep.Carrier.String()) + "\n")
	sb.WriteString(s.Field("secret", rep.Secret.String()) + "\n")
	sb.WriteString(s.Field("available", slots(rep.Available)) + "\n\n")

	for _, mc := range rep.Methods {
		status := s.Success.Render("fits")
		if !mc.Fits {
			status = s.Error.Render("does not fit")
		}
		needed := slots(mc.Needed)
		if mc.Method == stego.Jpeg {
			needed += fmt.Sprintf(" (%s stream)", humanize.IBytes(uint64(mc.Bytes)))
		}
		sb.WriteString(s.Field(mc.Method.String(), needed+"  "+status) + "\n")
	}

	sb.WriteString("\n")
	if rep.Selected.Valid() {
		sb.WriteString(s.Field("hide uses", s.Method.Render(rep.Selected.String())))
	} else {
		sb.WriteString(s.Field("hide uses", s.Error.Render("nothing fits, try --jpeg or --resize")))
	}
	if rep.GrowTo != rep.Carrier && rep.GrowTo != (stego.Size{}) {
		sb.WriteString("\n" + s.Field("--resize", "base grows the carrier to "+rep.GrowTo.String()))
	}
	if rep.ShrinkTo != rep.Secret && rep.ShrinkTo != (stego.Size{}) {
		sb.WriteString("\n" + s.Field("--resize", "secret shrinks it to "+rep.ShrinkTo.String()))
	}
	return sb.String()
}

func renderHistory(entries []history.Entry) string {
	s := styles.T().S()
	muted := s.Label.UnsetWidth()
	if len(entries) == 0 {
		return muted.Render("no operations recorded")
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := fmt.Sprintf("%s %s %s %s -> %s",
			muted.Render(humanize.RelTime(e.CreatedAt, time.Now(), "ago", "from now")),
			s.Title.Render(e.Command),
			s.Method.Render(e.Method),
			s.Path.Render(e.CarrierPath),
			s.Path.Render(e.OutputPath))
		if e.Resized {
			line += " " + s.Warning.Render("(resized)")
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
