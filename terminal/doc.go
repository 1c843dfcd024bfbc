// Package terminal holds the few terminal concerns that live outside tcell:
// color capability selection before the screen starts and crash-time recovery
// of a terminal that tcell could not finalize.
package terminal
