// Package alphabet defines the closed character set understood by the accent
// predictor and the map from accented characters to their unaccented base.
package alphabet
