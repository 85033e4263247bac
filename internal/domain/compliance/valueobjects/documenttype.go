package valueobjects

import "fmt"

// DocumentTypeCode identifies the requirement slot a document fills.
type DocumentTypeCode string

const (
	DocumentTypeDURC           DocumentTypeCode = "DURC"
	DocumentTypeVisuraCamerale DocumentTypeCode = "VISURA_CAMERALE"
	DocumentTypeInsurance      DocumentTypeCode = "INSURANCE"
	DocumentTypeDVR            DocumentTypeCode = "DVR"
	DocumentTypePOS            DocumentTypeCode = "POS"
	DocumentTypeUNILAV         DocumentTypeCode = "UNILAV"
	DocumentTypeMedicalFitness DocumentTypeCode = "MEDICAL_FITNESS"
	DocumentTypeSafetyTraining DocumentTypeCode = "SAFETY_TRAINING"
	DocumentTypeIDDocument     DocumentTypeCode = "ID_DOCUMENT"
	DocumentTypeF24            DocumentTypeCode = "F24"
	DocumentTypeSOA            DocumentTypeCode = "SOA"
)

var documentTypeLabels = map[DocumentTypeCode]string{
	DocumentTypeDURC:           "Documento Unico di Regolarità Contributiva",
	DocumentTypeVisuraCamerale: "Visura camerale",
	DocumentTypeInsurance:      "Polizza assicurativa RCT/RCO",
	DocumentTypeDVR:            "Documento di Valutazione dei Rischi",
	DocumentTypePOS:            "Piano Operativo di Sicurezza",
	DocumentTypeUNILAV:         "Comunicazione obbligatoria UNILAV",
	DocumentTypeMedicalFitness: "Idoneità sanitaria",
	DocumentTypeSafetyTraining: "Attestato formazione sicurezza",
	DocumentTypeIDDocument:     "Documento di identità",
	DocumentTypeF24:            "Quietanza F24",
	DocumentTypeSOA:            "Attestazione SOA",
}

func (c DocumentTypeCode) String() string {
	return string(c)
}

func (c DocumentTypeCode) IsValid() bool {
	_, ok := documentTypeLabels[c]
	return ok
}

// Label returns the Italian display name, or the raw code when unknown.
func (c DocumentTypeCode) Label() string {
	if l, ok := documentTypeLabels[c]; ok {
		return l
	}
	return string(c)
}

func ParseDocumentTypeCode(s string) (DocumentTypeCode, error) {
	c := DocumentTypeCode(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid document type code: %q", s)
	}
	return c, nil
}
