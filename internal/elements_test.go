package internal

import (
	"encoding/xml"
	"strings"
	"testing"
)

func marshalEnvelope(t *testing.T, env *Envelope) string {
	t.Helper()
	b, err := xml.Marshal(env)
	if err != nil {
		t.Fatalf("xml.Marshal() = %v", err)
	}
	return string(b)
}

func TestEnvelopeHeader(t *testing.T) {
	env := NewEnvelope("Exchange2013_SP1", Body{
		DeleteItem: &DeleteItem{
			DeleteType: "HardDelete",
			ItemIDs:    ItemIDs{IDs: []ItemIDElement{{ID: "abc", ChangeKey: "def"}}},
		},
	})
	s := marshalEnvelope(t, env)

	for _, want := range []string{
		`<soap:Envelope`,
		`xmlns:soap="http://schemas.xmlsoap.org/soap/envelope/"`,
		`xmlns:t="http://schemas.microsoft.com/exchange/services/2006/types"`,
		`xmlns:m="http://schemas.microsoft.com/exchange/services/2006/messages"`,
		`<soap:Header><t:RequestServerVersion Version="Exchange2013_SP1"></t:RequestServerVersion></soap:Header>`,
		`<m:DeleteItem DeleteType="HardDelete">`,
		`<t:ItemId Id="abc" ChangeKey="def">`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("envelope missing %q:\n%v", want, s)
		}
	}
}

func TestEnvelopeWithoutHeader(t *testing.T) {
	env := NewEnvelope("", Body{
		GetItem: &GetItem{
			ItemShape: ItemShape{BaseShape: "IdOnly"},
			ItemIDs:   ItemIDs{IDs: []ItemIDElement{{ID: "abc"}}},
		},
	})
	s := marshalEnvelope(t, env)

	if strings.Contains(s, "soap:Header") {
		t.Errorf("headerless envelope contains a soap:Header block:\n%v", s)
	}
	if !strings.Contains(s, `<t:BaseShape>IdOnly</t:BaseShape>`) {
		t.Errorf("envelope missing BaseShape:\n%v", s)
	}
	// No change key was given, so none must be rendered.
	if !strings.Contains(s, `<t:ItemId Id="abc">`) {
		t.Errorf("envelope missing bare ItemId:\n%v", s)
	}
}

func TestEnvelopeEmbedsItemNode(t *testing.T) {
	task := NewElement(xml.Name{Space: NamespaceTypes, Local: "Task"})
	task.Append(NewTextElement(xml.Name{Space: NamespaceTypes, Local: "Subject"}, "Write poem"))

	env := NewEnvelope("Exchange2010", Body{
		CreateItem: &CreateItem{
			SavedItemFolderID: &FolderRef{
				Distinguished: &DistinguishedFolderIDElement{ID: "tasks"},
			},
			Items: ItemArray{Nodes: []Node{task}},
		},
	})
	s := marshalEnvelope(t, env)

	for _, want := range []string{
		`<t:DistinguishedFolderId Id="tasks">`,
		`<Task xmlns="http://schemas.microsoft.com/exchange/services/2006/types">`,
		`<Subject xmlns="http://schemas.microsoft.com/exchange/services/2006/types">Write poem</Subject>`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("envelope missing %q:\n%v", want, s)
		}
	}
}

const createItemResponseXML = `<?xml version="1.0" encoding="utf-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body>
    <m:CreateItemResponse xmlns:m="http://schemas.microsoft.com/exchange/services/2006/messages"
                          xmlns:t="http://schemas.microsoft.com/exchange/services/2006/types">
      <m:ResponseMessages>
        <m:CreateItemResponseMessage ResponseClass="Success">
          <m:ResponseCode>NoError</m:ResponseCode>
          <m:Items>
            <t:Task>
              <t:ItemId Id="AAA=" ChangeKey="BBB="/>
            </t:Task>
          </m:Items>
        </m:CreateItemResponseMessage>
      </m:ResponseMessages>
    </m:CreateItemResponse>
  </s:Body>
</s:Envelope>`

func TestResponseEnvelopeDecode(t *testing.T) {
	var env ResponseEnvelope
	if err := xml.Unmarshal([]byte(createItemResponseXML), &env); err != nil {
		t.Fatalf("xml.Unmarshal() = %v", err)
	}

	if got := env.Body.Content.Name().Local; got != "CreateItemResponse" {
		t.Fatalf("body content = %q, want CreateItemResponse", got)
	}

	msg := env.Body.Content.Find("CreateItemResponseMessage")
	if msg == nil {
		t.Fatalf("response message element not found")
	}
	if v, _ := msg.Attr("ResponseClass"); v != "Success" {
		t.Errorf("ResponseClass = %q, want Success", v)
	}

	id := msg.Find("ItemId")
	if id == nil {
		t.Fatalf("ItemId element not found")
	}
	if v, _ := id.Attr("Id"); v != "AAA=" {
		t.Errorf("Id = %q, want AAA=", v)
	}
	if v, _ := id.Attr("ChangeKey"); v != "BBB=" {
		t.Errorf("ChangeKey = %q, want BBB=", v)
	}
}

const schemaFaultXML = `<?xml version="1.0" encoding="utf-8"?>
<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/">
  <s:Body>
    <s:Fault>
      <faultcode>s:Client</faultcode>
      <faultstring>The request failed schema validation.</faultstring>
      <detail>
        <e:ResponseCode xmlns:e="http://schemas.microsoft.com/exchange/services/2006/errors">ErrorSchemaValidation</e:ResponseCode>
        <e:Message xmlns:e="http://schemas.microsoft.com/exchange/services/2006/errors">The request failed schema validation.</e:Message>
        <t:MessageXml xmlns:t="http://schemas.microsoft.com/exchange/services/2006/types">
          <t:LineNumber>12</t:LineNumber>
          <t:LinePosition>5</t:LinePosition>
          <t:Violation>Element 'Foo' is unexpected</t:Violation>
        </t:MessageXml>
      </detail>
    </s:Fault>
  </s:Body>
</s:Envelope>`

func TestFaultEnvelopeDecode(t *testing.T) {
	var env FaultEnvelope
	if err := xml.Unmarshal([]byte(schemaFaultXML), &env); err != nil {
		t.Fatalf("xml.Unmarshal() = %v", err)
	}

	fault := env.Body.Fault
	if fault == nil {
		t.Fatalf("fault element not found")
	}
	if fault.FaultString != "The request failed schema validation." {
		t.Errorf("faultstring = %q", fault.FaultString)
	}
	if fault.Detail.ResponseCode != "ErrorSchemaValidation" {
		t.Errorf("detail ResponseCode = %q", fault.Detail.ResponseCode)
	}
	if fault.Detail.LineNumber != 12 || fault.Detail.LinePosition != 5 {
		t.Errorf("detail location = %d:%d, want 12:5", fault.Detail.LineNumber, fault.Detail.LinePosition)
	}
	if fault.Detail.Violation != "Element 'Foo' is unexpected" {
		t.Errorf("detail Violation = %q", fault.Detail.Violation)
	}
}
