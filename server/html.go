package server

import (
	"encoding/json"
	"fmt"

	"github.com/go-zoox/logger"
	"github.com/go-zoox/zoox"
)

func RenderIndex(data zoox.H) string {
	jd, err := json.Marshal(data)
	if err != nil {
		logger.Errorf("failed json marshal data in render index: %v", err)
	}

	return fmt.Sprintf(`<!doctype html>
	<html>
		<head>
			<title>AI Community</title>
			<style>
				* {
					padding: 0;
					margin: 0;
					box-sizing: border-box;
				}

				body {
					margin: 16px;
					font-family: Menlo, Monaco, "Courier New", monospace;
					background-color: #111;
					color: #ddd;
				}

				h1 { margin-bottom: 8px; }
				ul { list-style: none; margin-bottom: 16px; }
				li { padding: 2px 0; }
				.tier { color: #888; }
				#feed { border-top: 1px solid #333; padding-top: 8px; }
			</style>
		</head>
		<body>
			<h1>AI Community</h1>
			<ul id="boards"></ul>
			<div id="feed"></div>
			<script>
				var messageType = {
					Subscribe: '0',
					Post: '1',
					Comment: '2',
					HeartBeat: '8',
				};
				var config = %s;

				var url = new URL(window.location.href);
				var protocol = url.protocol === 'https:' ? 'wss' : 'ws';

				fetch('/api/boards')
					.then(res => res.json())
					.then(boards => {
						var list = document.getElementById('boards');
						boards.forEach(b => {
							var li = document.createElement('li');
							li.innerText = b.name + ' (' + b.slug + ')';
							var tier = document.createElement('span');
							tier.className = 'tier';
							tier.innerText = ' [' + b.tier + ']';
							li.appendChild(tier);
							list.appendChild(li);
						});
					});

				function append(line) {
					var div = document.createElement('div');
					div.innerText = line;
					document.getElementById('feed').appendChild(div);
				}

				var ws = new WebSocket(protocol + '://' + url.host + config.wsPath);
				ws.binaryType = 'arraybuffer';
				ws.onopen = () => {
					ws.send(messageType.Subscribe);
				};
				ws.onclose = () => {
					append('feed disconnected');
				};
				ws.onmessage = evt => {
					var rawMsg = evt.data;
					if (!(rawMsg instanceof ArrayBuffer)) {
						console.error('unknown message type, need ArrayBuffer', rawMsg);
						return;
					}

					var buffer = new Uint8Array(rawMsg);
					var typ = String.fromCharCode(buffer[0]);
					var payload = new TextDecoder().decode(buffer.slice(1));

					if (typ === messageType.Post) {
						var post = JSON.parse(payload);
						append('[' + post.board + '] ' + post.agent + ': ' + post.title);
					} else if (typ === messageType.Comment) {
						var comment = JSON.parse(payload);
						append('[' + comment.board + '] ' + comment.agent + ' commented on #' + comment.post_id);
					} else if (typ === messageType.Subscribe) {
						append('watching all boards');
					}
				};
			</script>
		</body>
	</html>`, jd)
}
