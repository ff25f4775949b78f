package main

import (
	"image/color"

	"github.com/oliverbestmann/gaminglife/graph"
)

var BackgroundColor = graph.RGBA(0xf5f3eeff)
var BackgroundShadeColor = graph.RGBA(0xe6e1d6ff)

var TextLightColor color.Color = graph.RGBA(0xffffffff)
var TextDarkColor color.Color = graph.RGBA(0x000000ff)
var StrokeColor color.Color = graph.RGBA(0xffffffff)

var RecordColor color.Color = graph.RGBA(0x90d7ecff)

var ProgressTrackColor color.Color = graph.RGBA(0xd0ccc2ff)
var ProgressColor color.Color = graph.RGBA(0x6d838eff)
var ScaleColor color.Color = graph.RGBA(0x937b6aff)

var StatisticsEmptyColor color.Color = graph.RGBA(0xeee1c4ff)

var DebugColor color.Color = color.RGBA{R: 0xff, B: 0xff, A: 0xff}

const (
	LayerTimeView = "TimeView"
	LayerRecord   = "TimeView.RecordLayer"

	ItemCenter     = "TimeView.Center"
	ItemProgress   = "TimeView.LongPressProgress"
	ItemDaily      = "TimeView.Daily"
	ItemStatistics = "TimeView.Statistics"

	ItemRecordAudio  = "TimeView.RecordLayer.Audio"
	ItemRecordCancel = "TimeView.RecordLayer.Cancel"
	ItemRecordText   = "TimeView.RecordLayer.Text"
)
