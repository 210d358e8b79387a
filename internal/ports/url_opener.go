package ports

// URLOpener opens a web link in the user's browser
type URLOpener interface {
	Open(url string) error
}
