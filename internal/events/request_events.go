package events

const EquipmentScrappedEventName = "equipment.scrapped"

// EquipmentScrappedEvent публикуется движком жизненного цикла после
// перевода заявки в Scrap и пометки оборудования списанным.
type EquipmentScrappedEvent struct {
	RequestID   string
	EquipmentID string
}

func (e EquipmentScrappedEvent) Name() string { return EquipmentScrappedEventName }
