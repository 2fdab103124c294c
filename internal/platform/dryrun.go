package platform

import (
	"github.com/sirupsen/logrus"

	"github.com/dshills/gridmouse/internal/input/mouse"
)

// LogInjector logs pointer actions instead of performing them.
type LogInjector struct {
	log *logrus.Entry
}

// NewLogInjector creates a dry-run injector.
func NewLogInjector(log *logrus.Entry) *LogInjector {
	return &LogInjector{log: log}
}

// Click logs the click.
func (l *LogInjector) Click(x, y int, button mouse.Button, count mouse.ClickType) error {
	l.log.WithFields(logrus.Fields{
		"x":      x,
		"y":      y,
		"button": button.String(),
		"click":  count.String(),
	}).Info("click")
	return nil
}

// MoveRelative logs the move.
func (l *LogInjector) MoveRelative(dx, dy int) error {
	l.log.WithFields(logrus.Fields{"dx": dx, "dy": dy}).Info("move")
	return nil
}

// Scroll logs the vertical scroll.
func (l *LogInjector) Scroll(units int) error {
	l.log.WithField("units", units).Info("scroll")
	return nil
}

// HScroll logs the horizontal scroll.
func (l *LogInjector) HScroll(units int) error {
	l.log.WithField("units", units).Info("hscroll")
	return nil
}
