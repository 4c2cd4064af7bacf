package platform

// Package platform contains OS integration: filesystem helpers, local image
// listing, reveal/open in the desktop shell and setting the desktop wallpaper.
