package server

// Данный сервер просто объединяет специфичные HTTP сервера, отвечающие за обработку конкретных сущностей
// В примере у нас есть только StudentServer, но их может быть несколько
type Server struct {
	StudentServer
}

func NewServer(
	studentServer StudentServer,
) Server {
	return Server{
		StudentServer: studentServer,
	}
}
