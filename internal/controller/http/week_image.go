package http

import (
	"image/color"
	"io"
	"strconv"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/ustozhub/tutorcenter/internal/model"
)

// Константы размеров и отступов
const (
	imageWidth      = 1400
	imageHeight     = 900
	headerHeight    = 100
	leftLabelsWidth = 80
	dayPaddingX     = 8
	minSlotHeight   = 8.0
	slotRadius      = 6.0
	shadowOffset    = 3.0
	totalDays       = 7
	hourPadding     = 2
)

// Цветовая схема
var (
	bgColor         = color.RGBA{245, 246, 248, 255}
	headerTextColor = color.RGBA{80, 85, 90, 220}
	hourLabelColor  = color.RGBA{110, 115, 120, 200}
	hourLineColor   = color.NRGBA{150, 150, 150, 255}
	evenDayColor    = color.NRGBA{240, 240, 240, 255}
	oddDayColor     = color.NRGBA{220, 220, 220, 255}

	lessonColor     = color.RGBA{133, 193, 85, 220}
	lessonTextColor = color.RGBA{20, 24, 28, 230}
	shadowColor     = color.RGBA{0, 0, 0, 20}
)

var weekOrder = []model.Weekday{
	model.Monday, model.Tuesday, model.Wednesday,
	model.Thursday, model.Friday, model.Saturday, model.Sunday,
}

var weekdayShort = map[model.Weekday]string{
	model.Monday:    "Пн",
	model.Tuesday:   "Вт",
	model.Wednesday: "Ср",
	model.Thursday:  "Чт",
	model.Friday:    "Пт",
	model.Saturday:  "Сб",
	model.Sunday:    "Вс",
}

type hourRange struct {
	start int
	end   int
	total int
}

// renderWeekImage рисует недельную сетку группы: колонка на день недели,
// занятие группы — закрашенный слот по часам расписания
func renderWeekImage(w io.Writer, group *model.Group) error {
	hours := scheduleHourRange(group.Schedules)

	dc := gg.NewContext(imageWidth, imageHeight)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(bgColor)
	dc.Clear()

	dayWidth := (imageWidth - leftLabelsWidth) / totalDays
	dayHeight := imageHeight - headerHeight
	cellHeight := float64(dayHeight) / float64(hours.total)

	drawHeader(dc, group)
	drawHourLabels(dc, hours, cellHeight)

	byDay := make(map[model.Weekday][]*model.Schedule)
	for _, sch := range group.Schedules {
		byDay[sch.Day] = append(byDay[sch.Day], sch)
	}

	for i, day := range weekOrder {
		x := float64(leftLabelsWidth + i*dayWidth)
		y := float64(headerHeight)

		drawDayColumn(dc, day, x, y, dayWidth, dayHeight, i, hours, cellHeight)
		for _, sch := range byDay[day] {
			drawLessonSlot(dc, sch, x, y, dayWidth, hours, cellHeight)
		}
	}

	return dc.EncodePNG(w)
}

// scheduleHourRange определяет диапазон часов сетки по расписанию группы
func scheduleHourRange(schedules []*model.Schedule) hourRange {
	minHour := 24
	maxHour := 0

	for _, sch := range schedules {
		startH := sch.StartTime.Hour()
		endH := sch.EndTime.Hour()
		if sch.EndTime.Minute() > 0 {
			endH++
		}
		if startH < minHour {
			minHour = startH
		}
		if endH > maxHour {
			maxHour = endH
		}
	}

	if minHour == 24 {
		minHour, maxHour = 8, 20
	}

	start := max(minHour-hourPadding, 0)
	end := min(maxHour+hourPadding, 23)

	return hourRange{start: start, end: end, total: end - start + 1}
}

func drawHeader(dc *gg.Context, group *model.Group) {
	title := group.Name
	if group.Subject != nil {
		title += " — " + group.Subject.Name
	}

	dc.SetColor(headerTextColor)
	w, h := dc.MeasureString(title)
	dc.DrawStringAnchored(title, float64(imageWidth)/2-w/2, float64(headerHeight)/2+h/2, 0, 0)
}

func drawHourLabels(dc *gg.Context, hours hourRange, cellHeight float64) {
	dc.SetColor(hourLabelColor)
	for i := 0; i < hours.total; i++ {
		y := float64(headerHeight) + float64(i)*cellHeight
		label := formatTwoDigits(hours.start+i) + ":00"
		dc.DrawStringAnchored(label, float64(leftLabelsWidth)-10, y, 1, 0.5)
	}
}

func drawDayColumn(dc *gg.Context, day model.Weekday, x, y float64, dayWidth, dayHeight, index int, hours hourRange, cellHeight float64) {
	if index%2 == 0 {
		dc.SetColor(evenDayColor)
	} else {
		dc.SetColor(oddDayColor)
	}
	dc.DrawRectangle(x, y, float64(dayWidth), float64(dayHeight))
	dc.Fill()

	dc.SetColor(headerTextColor)
	dc.DrawStringAnchored(weekdayShort[day], x+float64(dayWidth)/2, y-10, 0.5, 0)

	dc.SetLineWidth(0.3)
	dc.SetColor(hourLineColor)
	for i := 0; i <= hours.total; i++ {
		hy := y + float64(i)*cellHeight
		dc.DrawLine(x, hy, x+float64(dayWidth), hy)
		dc.Stroke()
	}
}

func drawLessonSlot(dc *gg.Context, sch *model.Schedule, x, y float64, dayWidth int, hours hourRange, cellHeight float64) {
	startHour := float64(sch.StartTime.Hour()) + float64(sch.StartTime.Minute())/60.0
	endHour := float64(sch.EndTime.Hour()) + float64(sch.EndTime.Minute())/60.0

	slotY := y + (startHour-float64(hours.start))*cellHeight
	slotHeight := (endHour - startHour) * cellHeight
	if slotHeight < minSlotHeight {
		slotHeight = minSlotHeight
	}
	slotWidth := float64(dayWidth) - float64(dayPaddingX*2)

	// Тень
	dc.SetColor(shadowColor)
	dc.DrawRoundedRectangle(x+dayPaddingX+shadowOffset, slotY+2+shadowOffset, slotWidth, slotHeight-4, slotRadius)
	dc.Fill()

	// Слот занятия
	dc.SetColor(lessonColor)
	dc.DrawRoundedRectangle(x+float64(dayPaddingX), slotY+2, slotWidth, slotHeight-4, slotRadius)
	dc.Fill()

	// Рамка
	dc.SetColor(darkenColor(lessonColor, 0.8))
	dc.SetLineWidth(1)
	dc.DrawRoundedRectangle(x+float64(dayPaddingX), slotY+2, slotWidth, slotHeight-4, slotRadius)
	dc.Stroke()

	dc.SetColor(lessonTextColor)
	label := sch.StartTime.String() + " - " + sch.EndTime.String()
	dc.DrawStringAnchored(label, x+float64(dayPaddingX)+8, slotY+18, 0, 0)
}

func darkenColor(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

func formatTwoDigits(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
