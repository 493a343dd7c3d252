package service

import "github.com/jpl-au/codefind/internal/item"

// ItemJSON is the API-friendly representation of an item.
type ItemJSON struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Key     string `json:"key"`
	Link    string `json:"link,omitempty"`
	Size    int    `json:"size,omitempty"`
	Content string `json:"content,omitempty"`
}

// ToJSON converts items for JSON output. Bodies are included only when
// withContent is set; link variants always carry their link.
func ToJSON(svc Service, items []item.Item, withContent bool) []ItemJSON {
	links := svc.Variant().Links
	out := make([]ItemJSON, len(items))
	for i, it := range items {
		j := ItemJSON{
			Name:  it.Name,
			Title: svc.Title(it),
			Key:   it.Key,
		}
		if links {
			j.Link = svc.Resolve(it)
		}
		if it.HasContent {
			j.Size = len(it.Content)
			if withContent {
				j.Content = it.Content
			}
		}
		out[i] = j
	}
	return out
}
