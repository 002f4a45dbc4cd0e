package common

// UnknownStr is the display form of values outside a known set.
const UnknownStr = "unknown"
