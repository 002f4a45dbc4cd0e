package adapter

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"binding-generator/binding"
	"binding-generator/environment"
)

// WcfSqlProtocol is the WCF-SQL adapter protocol.
var WcfSqlProtocol = binding.ProtocolType{
	Name: "WCF-SQL",
	Capabilities: binding.CapabilitySupportsReceive | binding.CapabilitySupportsSend |
		binding.CapabilityReceiveIsCreatable | binding.CapabilityRequestResponse | binding.CapabilitySupportsSoap,
	ConfigurationClsid: "59b35d03-6a06-4734-a249-ef561254ecf7",
}

// SqlConnection identifies a SQL Server database.
type SqlConnection struct {
	Server   string
	Instance string
	Database string
}

// URI returns the mssql:// address of the database.
func (c SqlConnection) URI() string {
	return fmt.Sprintf("mssql://%s/%s/%s", c.Server, c.Instance, c.Database)
}

func (c SqlConnection) validate() error {
	if c.Server == "" {
		return errors.New("server is not defined")
	}

	if c.Database == "" {
		return errors.New("database is not defined")
	}

	return nil
}

// SqlInbound polls a database with a statement.
type SqlInbound struct {
	Overrides

	Connection SqlConnection
	// InboundID distinguishes several polling locations on one database.
	InboundID                    string
	PollingStatement             string
	PolledDataAvailableStatement string
	PollingInterval              time.Duration
}

// NewSqlInbound returns a typed-polling WCF-SQL receive configuration.
func NewSqlInbound(conn SqlConnection, inboundID, pollingStatement string) *SqlInbound {
	return &SqlInbound{
		Connection:       conn,
		InboundID:        inboundID,
		PollingStatement: pollingStatement,
		PollingInterval:  30 * time.Second,
	}
}

func (a *SqlInbound) ProtocolType() binding.ProtocolType {
	return WcfSqlProtocol
}

func (a *SqlInbound) Address(environment.Deployment) (string, error) {
	return a.Connection.URI() + "?InboundId=" + a.InboundID, nil
}

func (a *SqlInbound) TransportTypeData(environment.Deployment) (string, error) {
	var cfg strings.Builder

	cfg.WriteString(`<binding name="sqlBinding" inboundOperationType="TypedPolling"`)
	fmt.Fprintf(&cfg, ` pollingIntervalInSeconds="%d"`, int(a.PollingInterval/time.Second))
	writeAttr(&cfg, "pollingStatement", a.PollingStatement)

	if a.PolledDataAvailableStatement != "" {
		writeAttr(&cfg, "polledDataAvailableStatement", a.PolledDataAvailableStatement)
	}

	cfg.WriteString(" />")

	p := &customProps{}
	p.str("BindingType", "sqlBinding").
		str("BindingConfiguration", cfg.String())

	return p.String(), nil
}

func (a *SqlInbound) Validate() error {
	if err := a.Connection.validate(); err != nil {
		return err
	}

	if a.InboundID == "" {
		return errors.New("inbound id is not defined")
	}

	if a.PollingStatement == "" {
		return errors.New("polling statement is not defined")
	}

	if a.PollingInterval < time.Second {
		return errors.New("polling interval must be at least one second")
	}

	return nil
}

// SqlOutbound sends messages to a database as WCF-SQL operations.
type SqlOutbound struct {
	Overrides

	Connection SqlConnection
	// Action maps message types to operations; empty lets the message decide.
	Action string
}

// NewSqlOutbound returns a WCF-SQL send configuration.
func NewSqlOutbound(conn SqlConnection) *SqlOutbound {
	return &SqlOutbound{Connection: conn}
}

func (a *SqlOutbound) ProtocolType() binding.ProtocolType {
	return WcfSqlProtocol
}

func (a *SqlOutbound) Address(environment.Deployment) (string, error) {
	return a.Connection.URI(), nil
}

func (a *SqlOutbound) TransportTypeData(environment.Deployment) (string, error) {
	p := &customProps{}
	p.str("BindingType", "sqlBinding").
		str("BindingConfiguration", `<binding name="sqlBinding" />`).
		str("StaticAction", a.Action)

	return p.String(), nil
}

func (a *SqlOutbound) Validate() error {
	return a.Connection.validate()
}

func writeAttr(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, ` %s="`, name)
	_ = xml.EscapeText(b, []byte(value))
	b.WriteString(`"`)
}
