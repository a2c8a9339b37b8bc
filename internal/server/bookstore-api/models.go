// internal/server/bookstore-api/models.go
package bookstoreapi

import (
	"encoding/xml"
	"strings"

	"bookcafe-search/internal/models"
)

const (
	resultCodeOK = "0000"
	untitled     = "이름 없음"
)

// apiResponse mirrors <response><header/><body/></response> of the culture open API.
type apiResponse struct {
	XMLName xml.Name
	Header  apiHeader `xml:"header"`
	Body    *apiBody  `xml:"body"`
}

type apiHeader struct {
	ResultCode string `xml:"resultCode"`
	ResultMsg  string `xml:"resultMsg"`
}

type apiBody struct {
	TotalCount string    `xml:"totalCount"`
	Items      *apiItems `xml:"items"`
}

type apiItems struct {
	Item []apiItem `xml:"item"`
}

type apiItem struct {
	Title          string `xml:"TITLE"`
	Address        string `xml:"ADDRESS"`
	ContactPoint   string `xml:"CONTACT_POINT"`
	Description    string `xml:"DESCRIPTION"`
	SubDescription string `xml:"SUB_DESCRIPTION"`
	Coordinates    string `xml:"COORDINATES"`
}

func (i apiItem) toStoreInfo() models.StoreInfo {
	title := strings.TrimSpace(i.Title)
	if title == "" {
		title = untitled
	}
	return models.StoreInfo{
		Title:          title,
		Address:        strings.TrimSpace(i.Address),
		Contact:        strings.TrimSpace(i.ContactPoint),
		Description:    strings.TrimSpace(i.Description),
		SubDescription: strings.TrimSpace(i.SubDescription),
		Coordinates:    strings.TrimSpace(i.Coordinates),
	}
}
