package domain

// Link is a URL found in a message together with its page title.
// URL is the text as it appeared in the message. Title is empty when the
// page could not be fetched or had no title.
type Link struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}
