package domain

import "slices"

type Viewer struct {
	Email            string   `json:"email"`
	Name             string   `json:"name"`
	FollowedCurators []string `json:"followed_curators"`
	SavedItemIDs     []string `json:"saved_item_ids"`
}

func (v *Viewer) Follows(email string) bool {
	if v == nil || email == "" {
		return false
	}
	return slices.Contains(v.FollowedCurators, email)
}

func (v *Viewer) HasSaved(itemID string) bool {
	if v == nil {
		return false
	}
	return slices.Contains(v.SavedItemIDs, itemID)
}
