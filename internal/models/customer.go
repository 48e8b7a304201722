package models

type CustomerRecord struct {
	LocalID int    `json:"local_id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}
