package catalog

import "strings"

// Link returns the share URL of item under base, as base/kind/id.
func Link(base string, item Item) string {
	return strings.TrimRight(base, "/") + "/" + string(item.ItemKind()) + "/" + string(item.ItemID())
}

// ParseLink extracts the kind and ID from a share URL under base.
// Query strings and fragments are ignored. It also accepts the
// "spotify:kind:id" URI form.
func ParseLink(base, link string) (Kind, ID, bool) {
	link = strings.TrimSpace(link)
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		link = link[:i]
	}

	var parts []string
	if rest, ok := strings.CutPrefix(link, "spotify:"); ok {
		parts = strings.Split(rest, ":")
	} else {
		rest, ok := strings.CutPrefix(link, strings.TrimRight(base, "/")+"/")
		if !ok {
			return "", "", false
		}
		parts = strings.Split(strings.Trim(rest, "/"), "/")
	}
	if len(parts) != 2 || parts[1] == "" {
		return "", "", false
	}

	kind := Kind(parts[0])
	switch kind {
	case KindTrack, KindAlbum, KindArtist, KindPlaylist:
		return kind, ID(parts[1]), true
	}
	return "", "", false
}
